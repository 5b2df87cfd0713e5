// Package spiral generates the integer grid coordinates surrounding a center
// point in spiral order: by increasing distance from the center under a
// distance metric, with a fixed tie-break order inside every ring.
//
// Three walkers are provided, one per metric:
//
//   - Chebyshev traces concentric squares.
//   - Manhattan traces concentric diamonds.
//   - Euclidean walks the canonical octant 0 <= dx <= dy row by row and
//     expands every point into its 8-fold reflections, from a precomputed
//     table or from two running counters.
//
// All walkers share the same pull protocol (see Iterator). The package owns
// no grid storage and performs no I/O; callers apply the coordinate stream
// to their own data structures.
//
// Distances are exclusive ring counts: a walker built with maxDistance m
// produces the rings 0 (the center) through m-1. Every constructor rejects
// maxDistance <= 0.
//
// Coordinates are generic over every Go integer type. Arithmetic follows
// Go's wrap-on-overflow rules, so a spiral that crosses the range of its
// type produces wrapped coordinates instead of panicking.
//
// Example:
//
//	it, err := spiral.NewChebyshev(3, 3, 4)
//	if err != nil {
//	    return err
//	}
//	for p := range spiral.All(it) {
//	    // visit p.X, p.Y
//	}
package spiral
