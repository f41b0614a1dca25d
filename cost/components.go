package cost

import "github.com/katalvlaran/translineopt/route"

// Operation name constants, kept for wrapped-error context consistency
// with the rest of this module's error paths.
const (
	opSteelCost      = "SteelCost"
	opFoundationCost = "FoundationCost"
	opErectionCost   = "ErectionCost"
	opLandCost       = "LandCost"
)

// steelTonnage estimates structural steel mass, in metric tons, from a
// tower's geometry using an empirical height/base scaling the reference
// corpus's regional cost models use: heavier towers scale superlinearly
// with height because lattice bracing grows with both height and base.
func steelTonnage(g route.TowerGeometry) float64 {
	return 0.015 * g.TotalHeight * g.TotalHeight * (g.BaseWidth / g.TotalHeight)
}

// SteelCost returns the steel material cost for one tower.
//
// Complexity: O(1).
func SteelCost(g route.TowerGeometry, rates Rates) float64 {
	return steelTonnage(g) * rates.SteelPerTon
}

// concreteVolumeM3 returns the poured-concrete volume for one tower's
// footing, in cubic meters.
func concreteVolumeM3(g route.TowerGeometry) float64 {
	return g.FootingLength * g.FootingWidth * g.FootingDepth
}

// FoundationCost returns the foundation material cost for one tower.
//
// Complexity: O(1).
func FoundationCost(g route.TowerGeometry, rates Rates) float64 {
	return concreteVolumeM3(g) * rates.ConcretePerM3
}

// ErectionCost returns the labor/crane cost to erect one tower: a base
// rate scaled by a height factor (taller towers need larger cranes and
// more rigging time) and an anchor-type surcharge (anchors carry full
// conductor tension and are erected with tighter tolerances).
//
// Complexity: O(1).
func ErectionCost(g route.TowerGeometry, rates Rates) float64 {
	heightFactor := 1.0 + g.TotalHeight/60.0
	anchorSurcharge := 1.0
	if g.Type.IsAnchor() {
		anchorSurcharge = 1.25
	}
	return rates.ErectionBasePerTower * heightFactor * anchorSurcharge
}

// LandCost returns the right-of-way acquisition cost attributable to one
// tower's span: corridor width (by RowMode) times span length times the
// per-area land rate.
//
// Complexity: O(1).
func LandCost(spanLength float64, rowMode route.RowMode, rates Rates) float64 {
	widthM := rowModeWidthM(rowMode)
	return widthM * spanLength * rates.LandPerM2
}
