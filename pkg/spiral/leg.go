package spiral

// Leg identifies the edge of the current ring a walker is tracing.
// Chebyshev and Manhattan walkers visit the legs of every ring in the order
// Right, Top, Left, Bottom. Right is the side at positive x, Top the side at
// positive y.
type Leg uint8

const (
	// LegCenter is the initial state; the center has not been produced yet.
	LegCenter Leg = iota
	LegRight
	LegTop
	LegLeft
	LegBottom
	// LegDone marks an exhausted walker.
	LegDone
)

// String returns the name of the leg.
func (l Leg) String() string {
	switch l {
	case LegCenter:
		return "center"
	case LegRight:
		return "right"
	case LegTop:
		return "top"
	case LegLeft:
		return "left"
	case LegBottom:
		return "bottom"
	case LegDone:
		return "done"
	default:
		return "unknown"
	}
}
