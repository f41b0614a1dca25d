package codestd

import "github.com/katalvlaran/translineopt/route"

// CheckContext is the ambient design state every Check in a battery
// receives alongside the candidate geometry. Checks report only
// violation strings; no load case is reported back.
type CheckContext struct {
	VoltageKV      float64
	SpanLength     float64
	WindZone       route.WindZone
	Soil           route.Soil
	IncludeIceLoad bool
	Terrain        route.Terrain
}

// WindMultiplier returns the structural load multiplier this context's
// wind zone applies, folding the spec.md §4.3 wind-zone table in.
func (c CheckContext) WindMultiplier() float64 {
	return c.WindZone.Multiplier()
}

// SoilFootingFactor returns the foundation footing-depth multiplier for
// c.Soil: softer soil needs deeper footings to reach bearing capacity.
func (c CheckContext) SoilFootingFactor() float64 {
	switch c.Soil {
	case route.SoilSoft:
		return 1.35
	case route.SoilMedium:
		return 1.15
	case route.SoilHard:
		return 1.0
	case route.SoilRock:
		return 0.85
	default:
		return 1.0
	}
}
