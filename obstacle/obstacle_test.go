package obstacle_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/obstacle"
	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMap_MergesOverlappingSameKind(t *testing.T) {
	m, err := obstacle.NewMap([]route.ForbiddenZone{
		{Start: 100, End: 200, Kind: route.ObstacleWaterway},
		{Start: 150, End: 250, Kind: route.ObstacleWaterway},
		{Start: 300, End: 320, Kind: route.ObstacleHighway},
	})
	require.NoError(t, err)
	zones := m.Zones()
	require.Len(t, zones, 2)
	assert.Equal(t, 100.0, zones[0].Start)
	assert.Equal(t, 250.0, zones[0].End)
}

func TestNewMap_DoesNotMergeDifferentKinds(t *testing.T) {
	m, err := obstacle.NewMap([]route.ForbiddenZone{
		{Start: 100, End: 200, Kind: route.ObstacleWaterway},
		{Start: 150, End: 250, Kind: route.ObstacleHighway},
	})
	require.NoError(t, err)
	assert.Len(t, m.Zones(), 2)
}

func TestIsForbidden(t *testing.T) {
	m, err := obstacle.NewMap([]route.ForbiddenZone{{Start: 100, End: 200, Kind: route.ObstacleWater}})
	require.NoError(t, err)

	forbidden, zone := m.IsForbidden(150)
	assert.True(t, forbidden)
	assert.Equal(t, route.ObstacleWater, zone.Kind)

	forbidden, _ = m.IsForbidden(50)
	assert.False(t, forbidden)
}

func TestSafeSpot_AlreadySafe(t *testing.T) {
	m, err := obstacle.NewMap(nil)
	require.NoError(t, err)
	d, err := obstacle.SafeSpot(m, 500, 100, 5)
	require.NoError(t, err)
	assert.Equal(t, 500.0, d)
}

func TestSafeSpot_NudgesOutOfZone(t *testing.T) {
	m, err := obstacle.NewMap([]route.ForbiddenZone{{Start: 100, End: 200, Kind: route.ObstacleWater}})
	require.NoError(t, err)
	d, err := obstacle.SafeSpot(m, 150, 100, 10)
	require.NoError(t, err)
	forbidden, _ := m.IsForbidden(d)
	assert.False(t, forbidden)
}

func TestSafeSpot_NoSpotWithinBound(t *testing.T) {
	m, err := obstacle.NewMap([]route.ForbiddenZone{{Start: 0, End: 1000, Kind: route.ObstacleWater}})
	require.NoError(t, err)
	_, err = obstacle.SafeSpot(m, 500, 50, 10)
	assert.ErrorIs(t, err, obstacle.ErrNoSafeSpot)
}

func TestSafeSpot_NegativeMaxShift(t *testing.T) {
	m, _ := obstacle.NewMap(nil)
	_, err := obstacle.SafeSpot(m, 0, -1, 1)
	assert.ErrorIs(t, err, obstacle.ErrNegativeMaxShift)
}

func TestDetectSteepSlope(t *testing.T) {
	profile, err := route.NewTerrainProfile([]route.TerrainPoint{
		{Distance: 0, Elevation: 100},
		{Distance: 50, Elevation: 160}, // 120% grade over 50m
		{Distance: 500, Elevation: 165},
	})
	require.NoError(t, err)
	zones := obstacle.DetectSteepSlope(profile, 30, 15)
	require.Len(t, zones, 1)
	assert.Equal(t, route.ObstacleSteepSlope, zones[0].Kind)
}
