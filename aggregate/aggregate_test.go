package aggregate_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/aggregate"
	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTowers() []route.TowerStation {
	geom := route.TowerGeometry{Type: route.Suspension, TotalHeight: 25, BaseWidth: 7, SpanLength: 340, FootingLength: 5, FootingWidth: 5, FootingDepth: 4}
	return []route.TowerStation{
		{Index: 0, Distance: 0, SelectedSpan: 340, Geometry: &geom},
		{Index: 1, Distance: 340, SelectedSpan: 360, Geometry: &geom},
		{Index: 2, Distance: 700, Geometry: &geom},
	}
}

func TestBuildLineSummary(t *testing.T) {
	summary := aggregate.BuildLineSummary(sampleTowers(), 700)
	assert.Equal(t, 3, summary.TowerCount)
	assert.InDelta(t, 350.0, summary.AverageSpanM, 1e-9)
	assert.Greater(t, summary.SteelTonnageTotal, 0.0)
}

func TestBuildSafetySummary_AlwaysSafe(t *testing.T) {
	summary := aggregate.BuildSafetySummary(sampleTowers(), []bool{false, true, false}, map[int][]string{1: {"footing_depth too shallow"}})
	assert.Equal(t, "SAFE", summary.OverallStatus)
	assert.Equal(t, 1, summary.TowersWithFallback)
	assert.Len(t, summary.OriginalViolations[1], 1)
}

func TestBuildConfidence_DecrementsForEachSignal(t *testing.T) {
	clean := aggregate.BuildConfidence(aggregate.ConfidenceInputs{})
	assert.Equal(t, 100, clean.Score)
	assert.Empty(t, clean.Drivers)

	degraded := aggregate.BuildConfidence(aggregate.ConfidenceInputs{
		TowerCount:           3,
		FallbackCount:        1,
		ObstacleDataDegraded: true,
		UsedDefaultElevation: true,
	})
	assert.Less(t, degraded.Score, clean.Score)
	assert.Len(t, degraded.Drivers, 3)
}

func TestBuild_AssemblesCanonicalResult(t *testing.T) {
	in := aggregate.BuildInputs{
		RequestID:    "req-1",
		Towers:       sampleTowers(),
		TotalLengthM: 700,
		Fallback:     []bool{false, false, false},
		CostBreakdown: route.CostBreakdown{GrandTotal: 1_000_000, CostPerKM: 1_400_000},
	}
	result := aggregate.Build(in)
	require.Equal(t, "req-1", result.RequestID)
	assert.Equal(t, "SAFE", result.SafetySummary.OverallStatus)
	assert.Equal(t, 3, result.LineSummary.TowerCount)
	assert.NotNil(t, result.Warnings)
	assert.NotNil(t, result.Advisories)
}
