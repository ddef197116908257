package point

import (
	"errors"
	"fmt"
	"math"
)

// ErrNaN is returned when a coordinate that must be totally ordered is NaN.
var ErrNaN = errors.New("coordinate is NaN")

// NaNError reports the axis carrying a NaN coordinate.
type NaNError struct {
	Axis int
}

func (e *NaNError) Error() string {
	return fmt.Sprintf("axis %d: %v", e.Axis, ErrNaN)
}

func (e *NaNError) Unwrap() error { return ErrNaN }

// Ordered wraps a floating-point accessor and imposes a total order on its
// coordinates by rejecting NaN.
type Ordered[T any, S Float] struct {
	Accessor[T, S]
}

// CoordChecked returns the coordinate of item on axis, or a *NaNError.
func (o Ordered[T, S]) CoordChecked(item T, axis int) (S, error) {
	v := o.Coord(item, axis)
	if math.IsNaN(float64(v)) {
		return 0, &NaNError{Axis: axis}
	}
	return v, nil
}

// Check verifies every coordinate of item.
func (o Ordered[T, S]) Check(item T) error {
	for axis := range o.Dims() {
		if _, err := o.CoordChecked(item, axis); err != nil {
			return err
		}
	}
	return nil
}
