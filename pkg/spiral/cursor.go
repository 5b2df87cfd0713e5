package spiral

// cursor is the mutable walk state of a square or diamond walker. It always
// describes the next point to produce.
type cursor[T Integer] struct {
	dx, dy T
	ring   T
	leg    Leg
	// step is the position of (dx, dy) inside the current leg and length the
	// number of points on the leg. Counting steps instead of comparing the
	// offsets keeps legs whole when unsigned offsets wrap.
	step   uint64
	length uint64
}

// done reports whether the walker is exhausted.
func (c *cursor[T]) done() bool {
	return c.leg == LegDone
}
