// Package distance provides the squared Euclidean distance used by the k-d tree.
//
// Distances are computed in the coordinate type itself, so integer coordinates
// yield integer distances. Callers with large integer coordinates must pick a
// type wide enough for the squared sum.
//
// # Usage
//
//	d := distance.SquaredEuclidean(point.Array3[int]{}, a, b)
//	plane := distance.Axis(point.Array3[int]{}, query, node, axis)
package distance
