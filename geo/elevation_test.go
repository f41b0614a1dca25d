package geo_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/geo"
	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProfile(t *testing.T) *route.TerrainProfile {
	t.Helper()
	p, err := route.NewTerrainProfile([]route.TerrainPoint{
		{Distance: 0, Elevation: 100},
		{Distance: 100, Elevation: 120},
		{Distance: 300, Elevation: 80},
	})
	require.NoError(t, err)
	return p
}

func TestInterpolateElevation_Midpoint(t *testing.T) {
	p := buildProfile(t)
	e, err := geo.InterpolateElevation(p, 50)
	require.NoError(t, err)
	assert.InDelta(t, 110.0, e, 1e-9)
}

func TestInterpolateElevation_ExactSample(t *testing.T) {
	p := buildProfile(t)
	e, err := geo.InterpolateElevation(p, 100)
	require.NoError(t, err)
	assert.Equal(t, 120.0, e)
}

func TestInterpolateElevation_OutOfRange(t *testing.T) {
	p := buildProfile(t)
	_, err := geo.InterpolateElevation(p, 400)
	assert.ErrorIs(t, err, geo.ErrDistanceOutOfRange)

	_, err = geo.InterpolateElevation(p, -1)
	assert.ErrorIs(t, err, geo.ErrDistanceOutOfRange)
}

func TestInterpolateElevation_NilProfile(t *testing.T) {
	_, err := geo.InterpolateElevation(nil, 0)
	assert.ErrorIs(t, err, geo.ErrEmptyProfile)
}
