package spiral

// ManhattanSpiral walks the perimeters of concentric diamonds around a
// center. Ring r > 0 holds 4r points, traced as four diagonal legs of r
// points:
//
//   - Right: from (r, 0) stepping (-1, +1)
//   - Top: from (0, r) stepping (-1, -1)
//   - Left: from (-r, 0) stepping (+1, -1)
//   - Bottom: from (0, -r) stepping (+1, +1)
//
// With the center at (3, 3) and maxDistance 4, a 7x7 grid is visited in
// this order (y grows downwards, unvisited cells are 0):
//
//	 0   0   0  23   0   0   0
//	 0   0  22  12  24   0   0
//	 0  21  11   5  13  25   0
//	20  10   4   1   2   6  14
//	 0  19   9   3   7  15   0
//	 0   0  18   8  16   0   0
//	 0   0   0  17   0   0   0
type ManhattanSpiral[T Integer] struct {
	center      Point[T]
	maxDistance T
	cur         cursor[T]
	ring        T
	leg         Leg
}

// NewManhattan creates a diamond spiral around (x, y) producing the rings
// 0 through maxDistance-1. It returns a *DistanceError wrapping
// ErrInvalidMaxDistance if maxDistance <= 0.
func NewManhattan[T Integer](x, y, maxDistance T) (*ManhattanSpiral[T], error) {
	if err := checkMaxDistance(Manhattan, maxDistance); err != nil {
		return nil, err
	}
	return &ManhattanSpiral[T]{
		center:      Point[T]{X: x, Y: y},
		maxDistance: maxDistance,
		cur:         cursor[T]{leg: LegCenter},
	}, nil
}

// Next produces the next point of the spiral.
func (s *ManhattanSpiral[T]) Next() (Point[T], bool) {
	if s.cur.done() {
		return Point[T]{}, false
	}
	p := s.center.Add(s.cur.dx, s.cur.dy)
	s.ring, s.leg = s.cur.ring, s.cur.leg
	s.advance()
	return p, true
}

// Ring returns the ring of the last produced point.
func (s *ManhattanSpiral[T]) Ring() T { return s.ring }

// Leg returns the leg the last produced point lies on.
func (s *ManhattanSpiral[T]) Leg() Leg { return s.leg }

func (s *ManhattanSpiral[T]) advance() {
	c := &s.cur
	if c.leg == LegCenter {
		// maxDistance 1 ends here, before any diagonal step.
		s.startRing()
		return
	}

	switch c.leg {
	case LegRight:
		c.dx--
		c.dy++
	case LegTop:
		c.dx--
		c.dy--
	case LegLeft:
		c.dx++
		c.dy--
	case LegBottom:
		c.dx++
		c.dy++
	}

	c.step++
	if c.step < c.length {
		return
	}

	// Unlike the square, a diamond leg ends one step before the next leg's
	// first point, so continuing along the old direction lands on it.
	c.step = 0
	switch c.leg {
	case LegRight:
		c.leg = LegTop
	case LegTop:
		c.leg = LegLeft
	case LegLeft:
		c.leg = LegBottom
	case LegBottom:
		s.startRing()
	}
}

func (s *ManhattanSpiral[T]) startRing() {
	c := &s.cur
	c.ring++
	if c.ring == s.maxDistance {
		c.leg = LegDone
		return
	}
	c.leg = LegRight
	c.dx, c.dy = c.ring, 0
	c.step = 0
	c.length = uint64(c.ring)
}

var _ Iterator[int] = (*ManhattanSpiral[int])(nil)
