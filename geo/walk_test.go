package geo_test

import (
	"testing"

	"github.com/gotidy/ptr"
	"github.com/katalvlaran/translineopt/geo"
	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStraightRoute(t *testing.T) *route.Route {
	t.Helper()
	r, err := route.NewRoute([]route.RoutePoint{
		{Lat: ptr.Float64(27.700), Lon: ptr.Float64(85.300), Distance: 0},
		{Lat: ptr.Float64(27.700), Lon: ptr.Float64(85.310), Distance: 1000},
	})
	require.NoError(t, err)
	return r
}

func TestWalkPolylineByDistance_CoversFullLength(t *testing.T) {
	r := buildStraightRoute(t)
	samples, err := geo.WalkPolylineByDistance(r, 250)
	require.NoError(t, err)
	require.NotEmpty(t, samples)
	assert.Equal(t, 0.0, samples[0].Distance)
	assert.Equal(t, r.Length(), samples[len(samples)-1].Distance)
}

func TestWalkPolylineByDistance_NonPositiveStep(t *testing.T) {
	r := buildStraightRoute(t)
	_, err := geo.WalkPolylineByDistance(r, 0)
	assert.ErrorIs(t, err, geo.ErrNonPositiveStep)
}

func TestWalkPolylineByDistance_NilRoute(t *testing.T) {
	_, err := geo.WalkPolylineByDistance(nil, 100)
	assert.ErrorIs(t, err, geo.ErrEmptyProfile)
}
