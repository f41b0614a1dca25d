package cost

import (
	"github.com/katalvlaran/translineopt/route"
)

// TotalCost consolidates every tower's steel/foundation/erection cost and
// every span's land cost into a line-level route.CostBreakdown, adding
// the flat corridor charge and the cost_per_km objective (spec.md C4,
// §4.9). towers must already carry resolved Geometry; a tower with a nil
// Geometry is skipped (it has not been sized yet).
//
// When infeasible is true the returned breakdown's GrandTotal and
// CostPerKM are InfeasibleCost regardless of the computed components,
// matching the optimizer's fitness-comparison contract.
//
// Complexity: O(n) over the tower list.
func TotalCost(towers []route.TowerStation, rowMode route.RowMode, rates Rates, lineLengthKM float64, infeasible bool) (route.CostBreakdown, error) {
	if len(towers) == 0 {
		return route.CostBreakdown{}, ErrEmptyTowerSet
	}
	if err := rates.Validate(); err != nil {
		return route.CostBreakdown{}, err
	}

	var steel, foundation, erection, land float64
	fallbackCount := 0
	for _, st := range towers {
		if st.Geometry == nil {
			continue
		}
		steel += SteelCost(*st.Geometry, rates)
		foundation += FoundationCost(*st.Geometry, rates)
		erection += ErectionCost(*st.Geometry, rates)
		if st.SelectedSpan > 0 {
			land += LandCost(st.SelectedSpan, rowMode, rates)
		}
		if st.Nudge != nil {
			fallbackCount++
		}
	}
	corridor := rates.CorridorPerKM * lineLengthKM

	breakdown := route.CostBreakdown{
		SteelCostTotal:      steel,
		FoundationCostTotal: foundation,
		ErectionCostTotal:   erection,
		LandCostTotal:       land,
		CorridorCostTotal:   corridor,
	}
	breakdown.GrandTotal = steel + foundation + erection + land + corridor
	if infeasible {
		breakdown.GrandTotal = InfeasibleCost
	}
	if lineLengthKM > 0 {
		breakdown.CostPerKM = breakdown.GrandTotal / lineLengthKM
	}
	if infeasible {
		breakdown.CostPerKM = InfeasibleCost
	}
	breakdown.SensitivityLowPct, breakdown.SensitivityHighPct = sensitivityBand(len(towers), fallbackCount)

	return breakdown, nil
}

// IsInfeasible reports whether a grand total is the infeasible sentinel
// (spec.md C4); callers compare with this rather than an exact equality
// check since downstream arithmetic (e.g. averaging across a line) can
// perturb the sentinel value.
func IsInfeasible(grandTotal float64) bool {
	return grandTotal >= InfeasibleCost*0.999
}
