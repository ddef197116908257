package testutil

import (
	"testing"

	"github.com/hupe1980/kdtree/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints3(t *testing.T) {
	rng := NewRNG(4711)

	points := rng.Points3(100)
	require.Len(t, points, 100)
	for _, p := range points {
		for _, c := range p {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.Less(t, c, 1.0)
		}
	}

	rng.Reset()
	assert.Equal(t, points, rng.Points3(100))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestGridPoints3(t *testing.T) {
	rng := NewRNG(4711)

	for _, p := range rng.GridPoints3(200) {
		for _, c := range p {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
			assert.InDelta(t, c, float64(int(c*10+0.5))/10, 1e-12)
		}
	}
}

func TestBox3(t *testing.T) {
	rng := NewRNG(1)
	for range 50 {
		box := rng.Box3()
		for axis := range 3 {
			assert.LessOrEqual(t, box[0][axis], box[1][axis])
		}
	}
}

func TestBruteForce(t *testing.T) {
	acc := point.Array2[int]{}
	items := [][2]int{{0, 0}, {3, 4}, {1, 1}, {5, 5}}

	d, ok := MinSquaredDistance(acc, items, [2]int{2, 2})
	require.True(t, ok)
	assert.Equal(t, 2, d)

	_, ok = MinSquaredDistance(acc, nil, [2]int{2, 2})
	assert.False(t, ok)

	assert.Equal(t, []int{0, 2, 25, 50}, SortedSquaredDistances(acc, items, [2]int{0, 0}))

	assert.Equal(t, 2, CountWithin(acc, items, [2][2]int{{1, 1}, {3, 4}}))
	assert.True(t, Inside(acc, [2]int{1, 1}, [2][2]int{{1, 1}, {3, 4}}))

	assert.Equal(t, 2, CountWithinRadius(acc, items, [2]int{0, 0}, 5))
	assert.Equal(t, 3, CountWithinRadius(acc, items, [2]int{0, 0}, 6))

	pts := NewRNG(3).IntPoints2(10, 4)
	for _, p := range pts {
		assert.Less(t, p[0], 4)
		assert.Less(t, p[1], 4)
	}
}
