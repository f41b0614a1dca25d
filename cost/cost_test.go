package cost_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/cost"
	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() cost.Rates {
	return cost.Rates{
		SteelPerTon:          120000,
		ConcretePerM3:        8500,
		ErectionBasePerTower: 500000,
		LandPerM2:            150,
		CorridorPerKM:        200000,
	}
}

func TestRates_Validate(t *testing.T) {
	r := testRates()
	require.NoError(t, r.Validate())
	r.SteelPerTon = -1
	assert.ErrorIs(t, r.Validate(), cost.ErrNegativeRate)
}

func TestComponents_Positive(t *testing.T) {
	g := route.TowerGeometry{
		Type: route.Suspension, TotalHeight: 25, BaseWidth: 7,
		SpanLength: 340, FootingLength: 5, FootingWidth: 5, FootingDepth: 4,
	}
	rates := testRates()
	assert.Greater(t, cost.SteelCost(g, rates), 0.0)
	assert.Greater(t, cost.FoundationCost(g, rates), 0.0)
	assert.Greater(t, cost.ErectionCost(g, rates), 0.0)
	assert.Greater(t, cost.LandCost(g.SpanLength, route.RowRuralPrivate, rates), 0.0)
}

func TestErectionCost_AnchorSurcharge(t *testing.T) {
	g := route.TowerGeometry{TotalHeight: 25}
	rates := testRates()
	suspension := g
	suspension.Type = route.Suspension
	deadEnd := g
	deadEnd.Type = route.DeadEnd
	assert.Greater(t, cost.ErectionCost(deadEnd, rates), cost.ErectionCost(suspension, rates))
}

func buildTowers() []route.TowerStation {
	geom := route.TowerGeometry{
		Type: route.Suspension, TotalHeight: 25, BaseWidth: 7,
		SpanLength: 340, FootingLength: 5, FootingWidth: 5, FootingDepth: 4,
	}
	return []route.TowerStation{
		{Index: 0, Distance: 0, SelectedSpan: 340, Geometry: &geom},
		{Index: 1, Distance: 340, SelectedSpan: 360, Geometry: &geom},
		{Index: 2, Distance: 700, SelectedSpan: 0, Geometry: &geom},
	}
}

func TestTotalCost_Feasible(t *testing.T) {
	towers := buildTowers()
	breakdown, err := cost.TotalCost(towers, route.RowRuralPrivate, testRates(), 0.7, false)
	require.NoError(t, err)
	assert.Greater(t, breakdown.GrandTotal, 0.0)
	assert.False(t, cost.IsInfeasible(breakdown.GrandTotal))
	assert.InDelta(t, breakdown.GrandTotal/0.7, breakdown.CostPerKM, 1e-6)
}

func TestTotalCost_Infeasible(t *testing.T) {
	towers := buildTowers()
	breakdown, err := cost.TotalCost(towers, route.RowRuralPrivate, testRates(), 0.7, true)
	require.NoError(t, err)
	assert.True(t, cost.IsInfeasible(breakdown.GrandTotal))
}

func TestTotalCost_EmptyTowers(t *testing.T) {
	_, err := cost.TotalCost(nil, route.RowRuralPrivate, testRates(), 1.0, false)
	assert.ErrorIs(t, err, cost.ErrEmptyTowerSet)
}

func TestCostPerKM_AmortisesByInverseSpan(t *testing.T) {
	g := route.TowerGeometry{
		Type: route.Suspension, TotalHeight: 25, BaseWidth: 7,
		SpanLength: 340, FootingLength: 5, FootingWidth: 5, FootingDepth: 4,
	}
	rates := testRates()
	shortSpan := g
	shortSpan.SpanLength = 250
	longSpan := g
	longSpan.SpanLength = 450

	assert.Greater(t, cost.CostPerKM(g, route.RowRuralPrivate, rates), rates.CorridorPerKM)
	// Fewer, longer spans need fewer towers per km: both variants share
	// the same tower (only the span's land cost grows with length), so
	// the amortised per-km objective should favour the longer span here.
	assert.Greater(t, cost.CostPerKM(shortSpan, route.RowRuralPrivate, rates), cost.CostPerKM(longSpan, route.RowRuralPrivate, rates))
}

func TestSensitivityBand_WidensWithFallback(t *testing.T) {
	geom := route.TowerGeometry{
		Type: route.Suspension, TotalHeight: 25, BaseWidth: 7,
		SpanLength: 340, FootingLength: 5, FootingWidth: 5, FootingDepth: 4,
	}
	clean := []route.TowerStation{
		{Distance: 0, SelectedSpan: 340, Geometry: &geom},
		{Distance: 340, Geometry: &geom},
	}
	withFallback := []route.TowerStation{
		{Distance: 0, SelectedSpan: 340, Geometry: &geom, Nudge: &route.NudgeInfo{OriginalDistance: 10}},
		{Distance: 340, Geometry: &geom},
	}
	cleanBD, err := cost.TotalCost(clean, route.RowRuralPrivate, testRates(), 0.34, false)
	require.NoError(t, err)
	fbBD, err := cost.TotalCost(withFallback, route.RowRuralPrivate, testRates(), 0.34, false)
	require.NoError(t, err)
	assert.Greater(t, fbBD.SensitivityHighPct, cleanBD.SensitivityHighPct)
}

func TestWidenSensitivity_ContextFactorsAreAdditive(t *testing.T) {
	base := 8.0
	baseHigh := 15.0
	widenedLow, widenedHigh := cost.WidenSensitivity(base, baseHigh, route.TerrainMountainous, route.SoilSoft, route.WindZone4, 400, 5)
	assert.InDelta(t, base+30, widenedLow, 1e-9)
	assert.InDelta(t, baseHigh+30, widenedHigh, 1e-9)

	flatLow, flatHigh := cost.WidenSensitivity(base, baseHigh, route.TerrainFlat, route.SoilRock, route.WindZone1, 132, 0)
	assert.InDelta(t, base, flatLow, 1e-9)
	assert.InDelta(t, baseHigh, flatHigh, 1e-9)
}
