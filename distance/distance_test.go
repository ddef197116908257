package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/kdtree/point"
)

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 3, AbsDiff(1, 4))
	assert.Equal(t, 3, AbsDiff(4, 1))
	assert.Equal(t, uint8(250), AbsDiff(uint8(5), uint8(255)))
	assert.Equal(t, uint8(250), AbsDiff(uint8(255), uint8(5)))
	assert.InDelta(t, 0.5, AbsDiff(-0.25, 0.25), 1e-12)
}

func TestSquaredEuclidean(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		acc := point.Array3[int32]{}
		assert.Equal(t, int32(27), SquaredEuclidean(acc, [3]int32{1, 2, 3}, [3]int32{4, 5, 6}))
	})

	t.Run("Unsigned", func(t *testing.T) {
		acc := point.Array2[uint32]{}
		assert.Equal(t, uint32(25), SquaredEuclidean(acc, [2]uint32{3, 0}, [2]uint32{0, 4}))
	})

	t.Run("Slice", func(t *testing.T) {
		acc := point.Slice[float64]{K: 2}
		assert.InDelta(t, 25.0, SquaredEuclidean(acc, []float64{0, 0, 100}, []float64{3, 4, -100}), 1e-9)
	})
}

func TestAxis(t *testing.T) {
	acc := point.Array2[int]{}
	assert.Equal(t, 9, Axis(acc, [2]int{1, 10}, [2]int{4, 0}, 0))
	assert.Equal(t, 100, Axis(acc, [2]int{1, 10}, [2]int{4, 0}, 1))

	unsigned := point.Array2[uint8]{}
	assert.Equal(t, uint8(9), Axis(unsigned, [2]uint8{1, 0}, [2]uint8{4, 0}, 0))
	assert.Equal(t, uint8(9), Axis(unsigned, [2]uint8{4, 0}, [2]uint8{1, 0}, 0))
}
