package spotter_test

import (
	"testing"

	"github.com/gotidy/ptr"
	"github.com/katalvlaran/translineopt/codestd"
	"github.com/katalvlaran/translineopt/cost"
	"github.com/katalvlaran/translineopt/obstacle"
	"github.com/katalvlaran/translineopt/physics"
	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/spotter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightRoute(t *testing.T, length float64) *route.Route {
	t.Helper()
	r, err := route.NewRoute([]route.RoutePoint{
		{Lat: ptr.Float64(27.700), Lon: ptr.Float64(85.300), Distance: 0},
		{Lat: ptr.Float64(27.700), Lon: ptr.Float64(85.300 + length/111_000.0), Distance: length},
	})
	require.NoError(t, err)
	return r
}

func TestSimple_PlacesStationsWithinBounds(t *testing.T) {
	r := straightRoute(t, 1200)
	stations, unsafe, err := spotter.Simple(r, nil, nil, spotter.SpanContext{})
	require.NoError(t, err)
	require.Len(t, unsafe, len(stations))
	require.NoError(t, route.ValidateSequence(toTowerStations(stations), r.Length()))
}

func TestSimple_AvoidsForbiddenZone(t *testing.T) {
	r := straightRoute(t, 1200)
	m, err := obstacle.NewMap([]route.ForbiddenZone{{Start: 440, End: 460, Kind: route.ObstacleWater}})
	require.NoError(t, err)
	stations, _, err := spotter.Simple(r, m, nil, spotter.SpanContext{})
	require.NoError(t, err)
	for _, d := range stations {
		forbidden, _ := m.IsForbidden(d)
		assert.False(t, forbidden, "station at %g must not land in the forbidden zone", d)
	}
}

func TestSimple_RouteTooShort(t *testing.T) {
	r := straightRoute(t, 100)
	_, _, err := spotter.Simple(r, nil, nil, spotter.SpanContext{})
	assert.ErrorIs(t, err, spotter.ErrRouteTooShort)
}

func TestSectionBased_PlacesValidSequence(t *testing.T) {
	r := straightRoute(t, 1500)
	stations, unsafe, err := spotter.SectionBased(r, nil, nil, spotter.SpanContext{})
	require.NoError(t, err)
	require.Len(t, unsafe, len(stations))
	require.NoError(t, route.ValidateSequence(toTowerStations(stations), r.Length()))
}

func TestSectionBased_NudgesOffObstacle(t *testing.T) {
	r := straightRoute(t, 1500)
	// Force a station to land near 380m, then block it.
	m, err := obstacle.NewMap([]route.ForbiddenZone{{Start: 370, End: 390, Kind: route.ObstacleHighway}})
	require.NoError(t, err)
	stations, _, err := spotter.SectionBased(r, m, nil, spotter.SpanContext{})
	require.NoError(t, err)
	for _, d := range stations {
		forbidden, _ := m.IsForbidden(d)
		assert.False(t, forbidden)
	}
}

func TestSectionBased_SubdividesSpanFailingMidSpanClearance(t *testing.T) {
	r := straightRoute(t, 1200)
	profile, err := route.NewTerrainProfile([]route.TerrainPoint{
		{Distance: 0, Elevation: 0},
		{Distance: 500, Elevation: 50},
		{Distance: 700, Elevation: 50},
		{Distance: 1200, Elevation: 0},
	})
	require.NoError(t, err)
	std, err := codestd.Resolve("IEC")
	require.NoError(t, err)
	ctx := spotter.SpanContext{
		VoltageKV: 220,
		Conductor: physics.ConductorParams{WeightPerMeter: 15, TensionNewtons: 25000},
		Standard:  std,
		Rates:     cost.Rates{SteelPerTon: 1400, ConcretePerM3: 130, ErectionBasePerTower: 9000, LandPerM2: 18, CorridorPerKM: 6000},
		RowMode:   route.RowRuralPrivate,
	}

	stations, _, err := spotter.SectionBased(r, nil, profile, ctx)
	require.NoError(t, err)
	require.NoError(t, route.ValidateSequence(toTowerStations(stations), r.Length()))
	// The 50m rise centred in the route must force at least one extra
	// station beyond the unobstructed flat-route baseline.
	flatStations, _, err := spotter.SectionBased(r, nil, nil, spotter.SpanContext{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(stations), len(flatStations))
}

func toTowerStations(distances []float64) []route.TowerStation {
	out := make([]route.TowerStation, len(distances))
	for i, d := range distances {
		out[i] = route.TowerStation{Index: i, Distance: d}
	}
	return out
}
