package geo_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/geo"
	"github.com/stretchr/testify/assert"
)

// TestHaversine_KnownDistance checks the Kathmandu-Pokhara great-circle
// distance against a reference value (~142.4km), within 1% tolerance.
func TestHaversine_KnownDistance(t *testing.T) {
	d := geo.Haversine(27.7172, 85.3240, 28.2096, 83.9856)
	assert.InDelta(t, 142_400.0, d, 142_400.0*0.01)
}

func TestHaversine_SamePoint(t *testing.T) {
	d := geo.Haversine(27.7, 85.3, 27.7, 85.3)
	assert.Equal(t, 0.0, d)
}

func TestAccumulateDistances(t *testing.T) {
	lats := []float64{27.700, 27.701, 27.702}
	lons := []float64{85.300, 85.301, 85.302}
	dists := geo.AccumulateDistances(lats, lons)
	require := assert.New(t)
	require.Len(dists, 3)
	require.Equal(0.0, dists[0])
	require.Greater(dists[1], 0.0)
	require.Greater(dists[2], dists[1])
}
