package spiral

//go:generate mockgen -source=iterator.go -destination=mocks/mock_iterator.go -package=mocks

import "iter"

// Iterator is the pull protocol shared by every walker.
//
// Example usage:
//
//	it, _ := spiral.NewManhattan(0, 0, 10)
//	for {
//	    p, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // use p
//	}
//
// Iterators are not safe for concurrent use and cannot be restarted; build a
// new one to walk the spiral again.
type Iterator[T Integer] interface {
	// Next produces the next point of the spiral. It returns false once the
	// spiral is exhausted, and keeps returning false on every later call.
	Next() (Point[T], bool)

	// Ring returns the ring index of the point most recently produced by
	// Next. Before the first call it returns 0.
	Ring() T
}

// All adapts an Iterator to a range-over-func sequence.
func All[T Integer](it Iterator[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func Collect[T Integer](it Iterator[T]) []Point[T] {
	var points []Point[T]
	for p := range All(it) {
		points = append(points, p)
	}
	return points
}

// Take pulls at most n points from the iterator. Points not taken remain
// available to later calls of Next.
func Take[T Integer](it Iterator[T], n int) []Point[T] {
	if n <= 0 {
		return nil
	}
	points := make([]Point[T], 0, min(n, 1024))
	for len(points) < n {
		p, ok := it.Next()
		if !ok {
			break
		}
		points = append(points, p)
	}
	return points
}
