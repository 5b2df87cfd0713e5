package spiral

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	// MaxTableDistance is the largest maxDistance the table-based Euclidean
	// walker accepts. Its table holds about 8.4 million canonical points
	// (67 MB).
	MaxTableDistance = 1 << 12

	// MaxIncrementalDistance is the largest maxDistance the incremental
	// Euclidean walker accepts; canonical coordinates are kept in 32 bits.
	MaxIncrementalDistance = 1 << 31

	// maxCachedDistance is the largest maxDistance whose table is cached.
	// A cached table holds at most 32,896 points (257 KB), so the whole
	// cache stays under 4.2 MB.
	maxCachedDistance = 1 << 8

	// tableCacheSize is the number of small octant tables kept for reuse.
	tableCacheSize = 16
)

// octantPoint is a point of the canonical octant 0 <= x <= y. Its ring is y.
type octantPoint struct {
	x, y uint32
}

// octantSource yields canonical points row by row: y from 0, and x from 0
// to y inside each row.
type octantSource interface {
	next() (octantPoint, bool)
}

var (
	// Tables are immutable once built and shared between walkers.
	octantTables = mustOctantCache()
	tableBuilds  singleflight.Group
)

func mustOctantCache() *lru.Cache[uint64, []octantPoint] {
	c, err := lru.New[uint64, []octantPoint](tableCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// octantTable returns the canonical octant of every ring below maxDistance.
// Tables up to maxCachedDistance are cached, and concurrent requests for
// the same size share one build.
func octantTable(maxDistance uint64) []octantPoint {
	if maxDistance > maxCachedDistance {
		return buildOctantTable(maxDistance)
	}
	if t, ok := octantTables.Get(maxDistance); ok {
		return t
	}
	v, _, _ := tableBuilds.Do(strconv.FormatUint(maxDistance, 10), func() (any, error) {
		if t, ok := octantTables.Get(maxDistance); ok {
			return t, nil
		}
		t := buildOctantTable(maxDistance)
		octantTables.Add(maxDistance, t)
		return t, nil
	})
	return v.([]octantPoint)
}

func buildOctantTable(maxDistance uint64) []octantPoint {
	table := make([]octantPoint, 0, maxDistance*(maxDistance+1)/2)
	rows := rowSource{maxDistance: maxDistance}
	for p, ok := rows.next(); ok; p, ok = rows.next() {
		table = append(table, p)
	}
	return table
}

// tableSource walks a prebuilt octant table.
type tableSource struct {
	table []octantPoint
	i     int
}

func (s *tableSource) next() (octantPoint, bool) {
	if s.i >= len(s.table) {
		return octantPoint{}, false
	}
	p := s.table[s.i]
	s.i++
	return p, true
}

// rowSource derives the canonical points one at a time from two counters.
type rowSource struct {
	maxDistance uint64
	x, y        uint64
}

func (s *rowSource) next() (octantPoint, bool) {
	if s.y >= s.maxDistance {
		return octantPoint{}, false
	}
	p := octantPoint{x: uint32(s.x), y: uint32(s.y)}
	if s.x == s.y {
		s.x, s.y = 0, s.y+1
	} else {
		s.x++
	}
	return p, true
}
