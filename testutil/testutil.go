package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/kdtree/distance"
	"github.com/hupe1980/kdtree/point"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Point3 returns a point with coordinates in [0, 1).
func (r *RNG) Point3() [3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return [3]float64{r.rand.Float64(), r.rand.Float64(), r.rand.Float64()}
}

// Points3 generates num points with coordinates in [0, 1).
func (r *RNG) Points3(num int) [][3]float64 {
	points := make([][3]float64, num)
	for i := range points {
		points[i] = r.Point3()
	}
	return points
}

// GridPoint3 returns a point whose coordinates are multiples of 0.1 in [0, 1].
// Such points collide often, which exercises tie handling.
func (r *RNG) GridPoint3() [3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var p [3]float64
	for i := range p {
		p[i] = float64(r.rand.Intn(11)) / 10
	}
	return p
}

// GridPoints3 generates num grid points, see GridPoint3.
func (r *RNG) GridPoints3(num int) [][3]float64 {
	points := make([][3]float64, num)
	for i := range points {
		points[i] = r.GridPoint3()
	}
	return points
}

// IntPoints2 generates num points with integer coordinates in [0, maxVal).
func (r *RNG) IntPoints2(num, maxVal int) [][2]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	points := make([][2]int, num)
	for i := range points {
		points[i] = [2]int{r.rand.Intn(maxVal), r.rand.Intn(maxVal)}
	}
	return points
}

// Box3 returns a normalized box spanned by two random points.
func (r *RNG) Box3() [2][3]float64 {
	lo, hi := r.Point3(), r.Point3()
	for axis := range lo {
		if lo[axis] > hi[axis] {
			lo[axis], hi[axis] = hi[axis], lo[axis]
		}
	}
	return [2][3]float64{lo, hi}
}

// MinSquaredDistance returns the smallest squared distance from query to any
// item by linear scan. ok is false for an empty set.
func MinSquaredDistance[T any, S point.Scalar](acc point.Accessor[T, S], items []T, query T) (best S, ok bool) {
	for _, item := range items {
		if d := distance.SquaredEuclidean(acc, item, query); !ok || d < best {
			best, ok = d, true
		}
	}
	return best, ok
}

// SortedSquaredDistances returns the squared distances from query to all
// items in ascending order.
func SortedSquaredDistances[T any, S point.Scalar](acc point.Accessor[T, S], items []T, query T) []S {
	out := make([]S, len(items))
	for i, item := range items {
		out[i] = distance.SquaredEuclidean(acc, item, query)
	}
	slices.Sort(out)
	return out
}

// Inside reports whether item lies in the box, bounds inclusive.
func Inside[T any, S point.Scalar](acc point.Accessor[T, S], item T, box [2]T) bool {
	for axis := range acc.Dims() {
		c := acc.Coord(item, axis)
		if c < acc.Coord(box[0], axis) || c > acc.Coord(box[1], axis) {
			return false
		}
	}
	return true
}

// CountWithin counts the items inside box by linear scan.
func CountWithin[T any, S point.Scalar](acc point.Accessor[T, S], items []T, box [2]T) int {
	n := 0
	for _, item := range items {
		if Inside(acc, item, box) {
			n++
		}
	}
	return n
}

// CountWithinRadius counts the items whose squared distance to query is
// strictly less than radius² by linear scan.
func CountWithinRadius[T any, S point.Scalar](acc point.Accessor[T, S], items []T, query T, radius S) int {
	n := 0
	for _, item := range items {
		if distance.SquaredEuclidean(acc, item, query) < radius*radius {
			n++
		}
	}
	return n
}
