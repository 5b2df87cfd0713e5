package spiral

import (
	"fmt"
	"math"
	"strings"
)

// Metric is the distance function that shapes the rings of a spiral.
type Metric uint8

const (
	// Chebyshev is max(|dx|, |dy|); rings are squares.
	Chebyshev Metric = iota
	// Manhattan is |dx| + |dy|; rings are diamonds.
	Manhattan
	// Euclidean is sqrt(dx² + dy²). Rings are the rows of the canonical
	// octant, and each ring is walked in increasing Euclidean distance.
	Euclidean
)

// Metrics lists every metric in declaration order.
var Metrics = []Metric{Chebyshev, Manhattan, Euclidean}

// String returns the lower-case name of the metric.
func (m Metric) String() string {
	switch m {
	case Chebyshev:
		return "chebyshev"
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("metric(%d)", uint8(m))
	}
}

// ParseMetric returns the metric with the given name. Matching is
// case-insensitive.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chebyshev":
		return Chebyshev, nil
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// Ring returns the index of the ring that contains the offset (dx, dy) from
// a center under the metric. Euclidean rings are octant rows, so their
// index is max(|dx|, |dy|), which Distance bounds within a factor of √2.
//
// Parameters:
//   - dx: The horizontal offset from the center.
//   - dy: The vertical offset from the center.
//
// Returns:
//   - uint64: The ring index. 0 is the center itself.
func (m Metric) Ring(dx, dy int64) uint64 {
	ax, ay := absUint64(dx), absUint64(dy)
	if m == Manhattan {
		return ax + ay
	}
	return max(ax, ay)
}

// Distance returns the distance of the offset (dx, dy) from a center under
// the metric.
func (m Metric) Distance(dx, dy int64) float64 {
	ax, ay := float64(absUint64(dx)), float64(absUint64(dy))
	switch m {
	case Chebyshev:
		return max(ax, ay)
	case Manhattan:
		return ax + ay
	default:
		return math.Hypot(ax, ay)
	}
}

// Size returns the exact number of points a spiral of the metric produces
// for maxDistance. It returns 0 for maxDistance 0. Results wrap for
// maxDistance beyond 2^31.
func Size(m Metric, maxDistance uint64) uint64 {
	if maxDistance == 0 {
		return 0
	}
	if m == Manhattan {
		return 2*maxDistance*(maxDistance-1) + 1
	}
	side := 2*maxDistance - 1
	return side * side
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
