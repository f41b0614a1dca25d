package aggregate

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/translineopt/route"
)

// BuildLineSummary consolidates per-tower geometry into line-level
// statistics (spec.md §4.9), using gonum/stat for the span-length mean
// the same way matrix's statistics helpers lean on plain numerical
// reduction for dense-data summaries.
//
// Complexity: O(n).
func BuildLineSummary(towers []route.TowerStation, totalLengthM float64) route.LineSummary {
	if len(towers) == 0 {
		return route.LineSummary{}
	}

	spans := make([]float64, 0, len(towers))
	var steelTons, concreteM3 float64
	for _, st := range towers {
		if st.SelectedSpan > 0 {
			spans = append(spans, st.SelectedSpan)
		}
		if st.Geometry != nil {
			steelTons += estimateSteelTons(*st.Geometry)
			concreteM3 += st.Geometry.FootingLength * st.Geometry.FootingWidth * st.Geometry.FootingDepth
		}
	}

	avgSpan := 0.0
	if len(spans) > 0 {
		avgSpan = stat.Mean(spans, nil)
	}

	density := 0.0
	if totalLengthM > 0 {
		density = float64(len(towers)) / (totalLengthM / 1000.0)
	}

	return route.LineSummary{
		TowerCount:        len(towers),
		TotalLengthM:      totalLengthM,
		AverageSpanM:      avgSpan,
		TowerDensityPerKM: density,
		SteelTonnageTotal: steelTons,
		ConcreteVolumeM3:  concreteM3,
	}
}

// estimateSteelTons mirrors cost.steelTonnage's empirical formula; it is
// duplicated here (rather than imported) because aggregate reports a
// physical-quantity summary, not a cost, and the two concerns are kept
// decoupled from each other's packages.
func estimateSteelTons(g route.TowerGeometry) float64 {
	return 0.015 * g.TotalHeight * g.TotalHeight * (g.BaseWidth / g.TotalHeight)
}
