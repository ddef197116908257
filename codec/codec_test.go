package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCoordinateTuples(t *testing.T) {
	src := [][3]int32{{1, 2, 3}, {4, 5, 6}}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, _ := ByName(name)

			data, err := c.Marshal(src)
			require.NoError(t, err)
			assert.Equal(t, "[[1,2,3],[4,5,6]]", string(data))

			var dst [][3]int32
			require.NoError(t, c.Unmarshal(data, &dst))
			assert.Equal(t, src, dst)
		})
	}
}

func TestFloatTuples(t *testing.T) {
	src := [][2]float64{{0.5, -1.25}}

	data, err := Default.Marshal(src)
	require.NoError(t, err)

	var dst [][2]float64
	require.NoError(t, Default.Unmarshal(data, &dst))
	assert.Equal(t, src, dst)
}

func TestAppend(t *testing.T) {
	out, err := GoJSON{}.Append([]byte("x="), []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "x=[1,2]", string(out))
}
