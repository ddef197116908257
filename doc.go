// Package kdtree provides a static, in-memory k-d tree for nearest-neighbor,
// k-nearest-neighbor, box and radius queries.
//
// The tree is built once from a batch of points and then queried read-only
// any number of times, from any number of goroutines. There is no insertion
// or deletion after the build.
//
// # Quick Start
//
//	points := [][3]float64{{0.1, 0.2, 0.3}, {0.9, 0.1, 0.4}, {0.5, 0.5, 0.5}}
//	tree, err := kdtree.BuildOrdered(points, point.Array3[float64]{})
//	if err != nil {
//	    // a coordinate was NaN
//	}
//	nn, ok := tree.Nearest([3]float64{0.4, 0.4, 0.4})
//	knn := tree.Nearests([3]float64{0.4, 0.4, 0.4}, 2)
//	box := tree.Within([2][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}})
//	ball := tree.WithinRadius([3]float64{0.4, 0.4, 0.4}, 0.25)
//
// # Builders
//
// Integer coordinates have a natural total order and use Build or ParBuild.
// Floating-point coordinates use BuildOrdered or ParBuildOrdered, which reject
// NaN before touching the input. Every builder takes ownership of the passed
// slice and reorders it in place; the order of the result encodes the tree.
//
// The parallel builders fork the two halves of every region larger than the
// fan-out threshold (see WithParallelThreshold) and produce exactly the same
// layout as their sequential counterparts.
//
// # Layout
//
// Nodes are not linked by pointers. The node of a region items[lo:hi] is
// items[lo+(hi-lo)/2], its subtrees are the regions on either side, and the
// splitting axis is the depth modulo the number of axes.
//
// # Serialization
//
// A tree encodes as a flat list of its items in internal order (see Encode,
// Decode and MarshalJSON). Decoding restores that order verbatim and checks
// it with Validate instead of rebuilding.
package kdtree
