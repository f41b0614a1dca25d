package engine

import (
	"github.com/katalvlaran/translineopt/physics"
	"github.com/katalvlaran/translineopt/route"
)

// effectiveConductor returns the conductor mechanical profile to use for
// sag/clearance, scaling weight per meter up when ice load is in scope
// (spec.md §6's include_ice_load flag).
func effectiveConductor(base physics.ConductorParams, includeIceLoad bool) physics.ConductorParams {
	if !includeIceLoad {
		return base
	}
	base.WeightPerMeter *= 1.4
	return base
}

// buildSpanResults computes each consecutive span's sag and mid-span
// clearance (spec.md C2), and folds every span into its strain section
// to report the section's ruling span (spec.md C2's
// √(ΣLᵢ³/ΣLᵢ) over spans between anchors).
func buildSpanResults(stations []route.TowerStation, conductor physics.ConductorParams) []route.SpanResult {
	if len(stations) < 2 {
		return nil
	}

	lengths := make([]float64, len(stations)-1)
	anchorAfter := make([]bool, len(stations)-1)
	for i := 0; i < len(stations)-1; i++ {
		lengths[i] = stations[i+1].Distance - stations[i].Distance
		anchorAfter[i] = stations[i+1].Type.IsAnchor()
	}

	rulingBySpan := make([]float64, len(lengths))
	sectionStart := 0
	for _, section := range physics.StrainSections(lengths, anchorAfter) {
		rulingSpan, err := physics.RulingSpan(section)
		if err != nil {
			rulingSpan = 0
		}
		for j := range section {
			rulingBySpan[sectionStart+j] = rulingSpan
		}
		sectionStart += len(section)
	}

	spans := make([]route.SpanResult, len(lengths))
	for i := 0; i < len(lengths); i++ {
		a, b := stations[i], stations[i+1]
		sagM := 0.0
		if sag, err := physics.Sag(lengths[i], conductor); err == nil {
			sagM = sag
		}
		attachA, attachB := 0.0, 0.0
		if a.Geometry != nil {
			attachA = a.Geometry.TotalHeight
		}
		if b.Geometry != nil {
			attachB = b.Geometry.TotalHeight
		}
		clearance := physics.MidSpanClearance(attachA, a.Elevation, attachB, b.Elevation, sagM)

		spans[i] = route.SpanResult{
			FromIndex:   a.Index,
			ToIndex:     b.Index,
			Length:      lengths[i],
			SagM:        sagM,
			ClearanceM:  clearance,
			RulingSpanM: rulingBySpan[i],
		}
	}

	return spans
}
