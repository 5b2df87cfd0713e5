package spiral

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integer is the set of coordinate types a spiral can be generated over.
type Integer interface {
	constraints.Integer
}

// Point is a grid coordinate.
type Point[T Integer] struct {
	X T
	Y T
}

// Pt is a convenience constructor for Point.
func Pt[T Integer](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the point offset by (dx, dy). The sum wraps on overflow.
func (p Point[T]) Add(dx, dy T) Point[T] {
	return Point[T]{X: p.X + dx, Y: p.Y + dy}
}

// String returns a string representation of the point.
func (p Point[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
