package engine

import (
	"math"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/translineopt/route"
)

// MarshalResult serializes a CanonicalResult to its wire JSON form,
// rounding to two decimal places first the tower distances, elevations,
// spans, deviation angles and geometries, the span results, the line
// summary and the cost breakdown. Tower Lat/Lon, Nudge.OriginalDistance,
// the optimization convergence history and the regional context are
// emitted unrounded.
// It uses goccy/go-json rather than the standard library encoder for
// the same throughput reasons the rest of this module's ecosystem does.
func MarshalResult(result route.CanonicalResult) ([]byte, error) {
	return json.Marshal(roundResult(result))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundResult(r route.CanonicalResult) route.CanonicalResult {
	towers := make([]route.TowerStation, len(r.Towers))
	for i, t := range r.Towers {
		t.Distance = round2(t.Distance)
		t.Elevation = round2(t.Elevation)
		t.SelectedSpan = round2(t.SelectedSpan)
		t.DeviationAngleDeg = round2(t.DeviationAngleDeg)
		if t.Geometry != nil {
			g := *t.Geometry
			g.TotalHeight = round2(g.TotalHeight)
			g.BaseWidth = round2(g.BaseWidth)
			g.FootingLength = round2(g.FootingLength)
			g.FootingWidth = round2(g.FootingWidth)
			g.FootingDepth = round2(g.FootingDepth)
			g.SpanLength = round2(g.SpanLength)
			t.Geometry = &g
		}
		towers[i] = t
	}

	spans := make([]route.SpanResult, len(r.Spans))
	for i, s := range r.Spans {
		s.Length = round2(s.Length)
		s.SagM = round2(s.SagM)
		s.ClearanceM = round2(s.ClearanceM)
		s.RulingSpanM = round2(s.RulingSpanM)
		spans[i] = s
	}

	r.Towers = towers
	r.Spans = spans
	r.LineSummary.TotalLengthM = round2(r.LineSummary.TotalLengthM)
	r.LineSummary.AverageSpanM = round2(r.LineSummary.AverageSpanM)
	r.LineSummary.TowerDensityPerKM = round2(r.LineSummary.TowerDensityPerKM)
	r.LineSummary.SteelTonnageTotal = round2(r.LineSummary.SteelTonnageTotal)
	r.LineSummary.ConcreteVolumeM3 = round2(r.LineSummary.ConcreteVolumeM3)
	r.CostBreakdown.SteelCostTotal = round2(r.CostBreakdown.SteelCostTotal)
	r.CostBreakdown.FoundationCostTotal = round2(r.CostBreakdown.FoundationCostTotal)
	r.CostBreakdown.ErectionCostTotal = round2(r.CostBreakdown.ErectionCostTotal)
	r.CostBreakdown.LandCostTotal = round2(r.CostBreakdown.LandCostTotal)
	r.CostBreakdown.CorridorCostTotal = round2(r.CostBreakdown.CorridorCostTotal)
	r.CostBreakdown.GrandTotal = round2(r.CostBreakdown.GrandTotal)
	r.CostBreakdown.CostPerKM = round2(r.CostBreakdown.CostPerKM)
	r.CostBreakdown.SensitivityLowPct = round2(r.CostBreakdown.SensitivityLowPct)
	r.CostBreakdown.SensitivityHighPct = round2(r.CostBreakdown.SensitivityHighPct)

	return r
}
