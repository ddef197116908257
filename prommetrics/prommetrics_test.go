package prommetrics

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kdtree"
	"github.com/hupe1980/kdtree/point"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg, WithNamespace("test"))
	require.NoError(t, err)

	points := [][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	tree, err := kdtree.BuildOrdered(points, point.Array2[float64]{}, kdtree.WithMetricsCollector(c))
	require.NoError(t, err)

	tree.Nearest([2]float64{1, 1})
	tree.Nearests([2]float64{1, 1}, 2)
	tree.WithinRadius([2]float64{0, 0}, 10)

	_, err = kdtree.BuildOrdered([][2]float64{{math.NaN(), 0}}, point.Array2[float64]{}, kdtree.WithMetricsCollector(c))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.builds.WithLabelValues("false", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.builds.WithLabelValues("false", "error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.buildItems))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.searches.WithLabelValues("nearest")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.searchResults.WithLabelValues("nearests")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.searchResults.WithLabelValues("within_radius")))

	count, err := testutil.GatherAndCount(reg, "test_search_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
