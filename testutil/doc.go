// Package testutil provides testing utilities for kdtree.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded point generators and brute-force reference
// implementations of every query.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	points := rng.Points3(10000)      // uniform [0, 1)
//	grid := rng.GridPoints3(10000)    // coordinates in {0, 0.1, ..., 1}, many ties
//
// # Ground Truth
//
//	d, ok := testutil.MinSquaredDistance(acc, points, query)
//	n := testutil.CountWithin(acc, points, box)
package testutil
