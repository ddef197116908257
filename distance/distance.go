package distance

import "github.com/hupe1980/kdtree/point"

// AbsDiff returns |a - b| without wrapping for unsigned kinds.
func AbsDiff[S point.Scalar](a, b S) S {
	if a < b {
		return b - a
	}
	return a - b
}

// Axis returns the squared distance between a and b along a single axis,
// i.e. the squared distance from a to the splitting plane through b.
func Axis[T any, S point.Scalar](acc point.Accessor[T, S], a, b T, axis int) S {
	d := AbsDiff(acc.Coord(a, axis), acc.Coord(b, axis))
	return d * d
}

// SquaredEuclidean returns the squared Euclidean distance between two items.
func SquaredEuclidean[T any, S point.Scalar](acc point.Accessor[T, S], a, b T) S {
	var sum S
	for axis := range acc.Dims() {
		d := AbsDiff(acc.Coord(a, axis), acc.Coord(b, axis))
		sum += d * d
	}
	return sum
}
