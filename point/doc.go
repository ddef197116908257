// Package point provides coordinate accessors for the k-d tree.
//
// An Accessor maps an item and an axis in [0, Dims()) to a scalar key. The tree
// never inspects items directly, so any point representation works as long as
// an accessor exists for it:
//
//	acc := point.Array3[float64]{}        // [3]float64
//	acc := point.Slice[int]{K: 4}         // []int with four axes
//	acc := point.R3{}                     // gonum r3.Vec
//	acc := point.Func[City, float64]{K: 2, Fn: func(c City, axis int) float64 { return c.Loc[axis] }}
//
// Floating-point coordinates have no total order because of NaN. Ordered wraps
// a float accessor and reports NaN as an error instead of ordering it.
package point
