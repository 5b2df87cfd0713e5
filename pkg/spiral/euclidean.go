package spiral

// reflectionCount is the number of symmetries of a circle on the grid.
const reflectionCount = 8

// EuclideanSpiral walks concentric rings around a center using the 8-fold
// symmetry of the circle.
//
// Canonical points of the octant 0 <= dx <= dy are taken row by row: ring
// dy from 0 to maxDistance-1, and dx from 0 to dy inside each ring, so the
// points of a ring come in increasing Euclidean distance. Each canonical
// point is expanded into its reflections in the fixed order
//
//	(x,y) (x,-y) (-x,y) (-x,-y) (y,x) (y,-x) (-y,x) (-y,-x)
//
// skipping a reflection that repeats an earlier one of the same canonical
// point, so every grid point is produced exactly once. Ring r covers the
// points with max(|dx|,|dy|) == r; their Euclidean distance lies between r
// and r·√2.
//
// With the center at (3, 3) and maxDistance 4, a 7x7 grid is visited in
// this order (y grows downwards):
//
//	49  41  33  27  31  39  47
//	45  25  17  11  15  23  43
//	37  21   9   3   7  19  35
//	29  13   5   1   4  12  28
//	36  20   8   2   6  18  34
//	44  24  16  10  14  22  42
//	48  40  32  26  30  38  46
type EuclideanSpiral[T Integer] struct {
	center Point[T]
	source octantSource

	// Distinct reflections of the current canonical point, as offsets, and
	// the index of each in the fixed reflection order.
	offsets    [reflectionCount]Point[T]
	reflection [reflectionCount]uint8
	count      int
	index      int

	ring    T
	current uint8
	done    bool
}

// NewEuclidean creates a circular spiral around (x, y) producing the rings
// 0 through maxDistance-1 from a precomputed canonical octant table. Small
// tables are cached per maxDistance and shared by every walker of that size.
//
// Parameters:
//   - x: The x position of the center of the spiral.
//   - y: The y position of the center of the spiral.
//   - maxDistance: The number of rings, center included.
//
// Returns:
//   - *EuclideanSpiral[T]: The walker, positioned before the center.
//   - error: A *DistanceError wrapping ErrInvalidMaxDistance if
//     maxDistance <= 0, or ErrTableTooLarge if maxDistance exceeds
//     MaxTableDistance.
func NewEuclidean[T Integer](x, y, maxDistance T) (*EuclideanSpiral[T], error) {
	if err := checkMaxDistance(Euclidean, maxDistance); err != nil {
		return nil, err
	}
	m := uint64(maxDistance)
	if m > MaxTableDistance {
		return nil, distanceError(Euclidean, maxDistance, ErrTableTooLarge)
	}
	return newEuclidean(x, y, &tableSource{table: octantTable(m)}), nil
}

// NewEuclideanIncremental creates the same spiral as NewEuclidean without a
// table: canonical points are derived one at a time from the current row
// and column, so memory does not grow with maxDistance.
//
// It returns a *DistanceError wrapping ErrInvalidMaxDistance if
// maxDistance <= 0, or ErrDistanceTooLarge if maxDistance exceeds
// MaxIncrementalDistance.
func NewEuclideanIncremental[T Integer](x, y, maxDistance T) (*EuclideanSpiral[T], error) {
	if err := checkMaxDistance(Euclidean, maxDistance); err != nil {
		return nil, err
	}
	m := uint64(maxDistance)
	if m > MaxIncrementalDistance {
		return nil, distanceError(Euclidean, maxDistance, ErrDistanceTooLarge)
	}
	return newEuclidean(x, y, &rowSource{maxDistance: m}), nil
}

func newEuclidean[T Integer](x, y T, source octantSource) *EuclideanSpiral[T] {
	return &EuclideanSpiral[T]{
		center: Point[T]{X: x, Y: y},
		source: source,
	}
}

// Next produces the next point of the spiral.
func (s *EuclideanSpiral[T]) Next() (Point[T], bool) {
	if s.done {
		return Point[T]{}, false
	}
	for s.index >= s.count {
		p, ok := s.source.next()
		if !ok {
			s.done = true
			s.source = nil
			return Point[T]{}, false
		}
		s.load(p)
	}
	off := s.offsets[s.index]
	s.current = s.reflection[s.index]
	s.index++
	return s.center.Add(off.X, off.Y), true
}

// Ring returns the ring of the last produced point.
func (s *EuclideanSpiral[T]) Ring() T { return s.ring }

// Reflection returns the position, in the fixed reflection order, of the
// last produced point relative to its canonical point.
func (s *EuclideanSpiral[T]) Reflection() int { return int(s.current) }

// load expands a canonical point into its distinct reflections. Duplicates
// are detected on exact offsets before conversion to T, so wrapping in
// narrow types never merges distinct points.
func (s *EuclideanSpiral[T]) load(p octantPoint) {
	x, y := int64(p.x), int64(p.y)
	candidates := [reflectionCount][2]int64{
		{x, y}, {x, -y}, {-x, y}, {-x, -y},
		{y, x}, {y, -x}, {-y, x}, {-y, -x},
	}

	s.count, s.index = 0, 0
	for i, c := range candidates {
		if containsOffset(candidates[:i], c) {
			continue
		}
		s.offsets[s.count] = Point[T]{X: T(c[0]), Y: T(c[1])}
		s.reflection[s.count] = uint8(i)
		s.count++
	}
	s.ring = T(p.y)
}

func containsOffset(offsets [][2]int64, o [2]int64) bool {
	for _, c := range offsets {
		if c == o {
			return true
		}
	}
	return false
}

var _ Iterator[int] = (*EuclideanSpiral[int])(nil)
