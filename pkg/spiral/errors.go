package spiral

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaxDistance is returned when maxDistance is zero or negative.
	// A spiral always contains at least its center, so the smallest valid
	// maxDistance is 1.
	ErrInvalidMaxDistance = errors.New("max distance must be at least 1")

	// ErrDistanceTooLarge is returned when maxDistance exceeds the range a
	// walker can track in its internal coordinates.
	ErrDistanceTooLarge = errors.New("max distance exceeds the supported range")

	// ErrTableTooLarge is returned by the table-based Euclidean walker when the
	// canonical octant table for maxDistance would exceed MaxTableDistance.
	// Use NewEuclideanIncremental for larger spirals.
	ErrTableTooLarge = errors.New("octant table would exceed the table size limit")

	// ErrUnknownMetric is returned when a metric or walker name is not
	// recognised.
	ErrUnknownMetric = errors.New("unknown metric")
)

// DistanceError reports a rejected maxDistance together with the walker that
// rejected it.
type DistanceError struct {
	// Metric is the metric of the walker being constructed.
	Metric Metric
	// Value is the rejected maxDistance, in the caller's integer type.
	Value any
	// Cause is one of the sentinel errors of this package.
	Cause error
}

// Error returns the error message for a DistanceError.
func (e *DistanceError) Error() string {
	return fmt.Sprintf("spiral: %s: max distance %v: %v", e.Metric, e.Value, e.Cause)
}

// Unwrap returns the sentinel cause so callers can use errors.Is.
func (e *DistanceError) Unwrap() error { return e.Cause }

func distanceError[T Integer](m Metric, value T, cause error) error {
	return &DistanceError{Metric: m, Value: value, Cause: cause}
}

// checkMaxDistance applies the common maxDistance policy of every walker.
func checkMaxDistance[T Integer](m Metric, maxDistance T) error {
	if maxDistance <= 0 {
		return distanceError(m, maxDistance, ErrInvalidMaxDistance)
	}
	return nil
}
