package cost

import "github.com/katalvlaran/translineopt/route"

// InfeasibleCost is the sentinel grand total reported for a design the
// caller has marked infeasible (spec.md C4): large enough that no sum of
// feasible-design costs in this system's domain could ever exceed it,
// so the optimizer's fitness comparison always prefers a feasible design.
const InfeasibleCost = 1e10

// Rates is the reference-data cost-per-unit table TotalCost is evaluated
// against; reference.Snapshot supplies the populated values loaded from
// the regional YAML table (spec.md §6).
type Rates struct {
	SteelPerTon        float64
	ConcretePerM3      float64
	ErectionBasePerTower float64
	LandPerM2          float64
	CorridorPerKM      float64
}

// Validate rejects a Rates table with any negative field.
func (r Rates) Validate() error {
	vals := []float64{r.SteelPerTon, r.ConcretePerM3, r.ErectionBasePerTower, r.LandPerM2, r.CorridorPerKM}
	for _, v := range vals {
		if v < 0 {
			return ErrNegativeRate
		}
	}
	return nil
}

// rowModeWidthM returns the corridor width, in meters, cost.LandCost
// assumes for a given right-of-way acquisition mode (spec.md §6):
// government corridors are pre-cleared and narrower; mixed/urban
// corridors need more land per tower footprint.
func rowModeWidthM(mode route.RowMode) float64 {
	switch mode {
	case route.RowGovernmentCorridor:
		return 20.0
	case route.RowRuralPrivate:
		return 30.0
	case route.RowUrbanPrivate:
		return 45.0
	case route.RowMixed:
		return 35.0
	default:
		return 30.0
	}
}
