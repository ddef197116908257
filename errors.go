package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is returned when a build meets a coordinate that
	// cannot be totally ordered (NaN).
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidLayout is returned when a decoded item sequence does not
	// satisfy the k-d tree invariant.
	ErrInvalidLayout = errors.New("invalid k-d tree layout")

	// ErrNoAccessor is returned when decoding into a tree without an accessor.
	ErrNoAccessor = errors.New("tree has no coordinate accessor")
)

// InvalidCoordinateError indicates which item and axis failed a build.
//
// It matches ErrInvalidCoordinate and the accessor's underlying error
// (e.g. point.ErrNaN) with errors.Is.
type InvalidCoordinateError struct {
	Index int
	Axis  int
	cause error
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("%v: item %d, axis %d", ErrInvalidCoordinate, e.Index, e.Axis)
}

func (e *InvalidCoordinateError) Unwrap() []error {
	return []error{ErrInvalidCoordinate, e.cause}
}

// LayoutError reports the first position whose subtrees violate the
// splitting-plane invariant.
type LayoutError struct {
	Node  int // Node is the position of the splitting item.
	Item  int // Item is the position of the offending item.
	Axis  int
	Depth int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%v: item %d on wrong side of node %d (axis %d, depth %d)",
		ErrInvalidLayout, e.Item, e.Node, e.Axis, e.Depth)
}

func (e *LayoutError) Unwrap() error { return ErrInvalidLayout }
