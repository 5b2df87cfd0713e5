package spiral

// ChebyshevSpiral walks the perimeters of concentric squares around a
// center. Ring r > 0 holds 8r points, traced as four legs of 2r points:
//
//   - Right: x = r, y from 1-r up to r
//   - Top: y = r, x from r-1 down to -r
//   - Left: x = -r, y from r-1 down to -r
//   - Bottom: y = -r, x from 1-r up to r
//
// With the center at (3, 3) and maxDistance 4, a 7x7 grid is visited in
// this order (y grows downwards):
//
//	43  44  45  46  47  48  49
//	42  21  22  23  24  25  26
//	41  20   7   8   9  10  27
//	40  19   6   1   2  11  28
//	39  18   5   4   3  12  29
//	38  17  16  15  14  13  30
//	37  36  35  34  33  32  31
type ChebyshevSpiral[T Integer] struct {
	center      Point[T]
	maxDistance T
	cur         cursor[T]
	ring        T
	leg         Leg
}

// NewChebyshev creates a square spiral around (x, y) producing the rings
// 0 through maxDistance-1.
//
// Parameters:
//   - x: The x position of the center of the spiral.
//   - y: The y position of the center of the spiral.
//   - maxDistance: The number of rings, center included.
//
// Returns:
//   - *ChebyshevSpiral[T]: The walker, positioned before the center.
//   - error: A *DistanceError wrapping ErrInvalidMaxDistance if maxDistance <= 0.
func NewChebyshev[T Integer](x, y, maxDistance T) (*ChebyshevSpiral[T], error) {
	if err := checkMaxDistance(Chebyshev, maxDistance); err != nil {
		return nil, err
	}
	return &ChebyshevSpiral[T]{
		center:      Point[T]{X: x, Y: y},
		maxDistance: maxDistance,
		cur:         cursor[T]{leg: LegCenter},
	}, nil
}

// Next produces the next point of the spiral.
func (s *ChebyshevSpiral[T]) Next() (Point[T], bool) {
	if s.cur.done() {
		return Point[T]{}, false
	}
	p := s.center.Add(s.cur.dx, s.cur.dy)
	s.ring, s.leg = s.cur.ring, s.cur.leg
	s.advance()
	return p, true
}

// Ring returns the ring of the last produced point.
func (s *ChebyshevSpiral[T]) Ring() T { return s.ring }

// Leg returns the leg the last produced point lies on.
func (s *ChebyshevSpiral[T]) Leg() Leg { return s.leg }

func (s *ChebyshevSpiral[T]) advance() {
	c := &s.cur
	if c.leg == LegCenter {
		s.startRing()
		return
	}

	c.step++
	if c.step < c.length {
		switch c.leg {
		case LegRight:
			c.dy++
		case LegTop:
			c.dx--
		case LegLeft:
			c.dy--
		case LegBottom:
			c.dx++
		}
		return
	}

	// The corner closing a leg belongs to that leg; the next leg starts one
	// step further along its own direction.
	c.step = 0
	switch c.leg {
	case LegRight:
		c.leg = LegTop
		c.dx--
	case LegTop:
		c.leg = LegLeft
		c.dy--
	case LegLeft:
		c.leg = LegBottom
		c.dx++
	case LegBottom:
		s.startRing()
	}
}

// startRing moves the cursor to the first point of the next ring, or marks
// the walker exhausted when that ring is maxDistance.
func (s *ChebyshevSpiral[T]) startRing() {
	c := &s.cur
	c.ring++
	if c.ring == s.maxDistance {
		c.leg = LegDone
		return
	}
	c.leg = LegRight
	c.dx, c.dy = c.ring, 1-c.ring
	c.step = 0
	c.length = 2 * uint64(c.ring)
}

var _ Iterator[int] = (*ChebyshevSpiral[int])(nil)
