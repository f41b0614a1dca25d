package engine

import "github.com/katalvlaran/translineopt/route"

// escalateWindZone bumps z one step up when design_for_higher_wind is
// set (spec.md §6's scenario flags), capped at zone_4.
func escalateWindZone(z route.WindZone, designForHigherWind bool) route.WindZone {
	if !designForHigherWind {
		return z
	}
	switch z {
	case route.WindZone1:
		return route.WindZone2
	case route.WindZone2:
		return route.WindZone3
	default:
		return route.WindZone4
	}
}

// applyFoundationAndReliabilityMargins enlarges a sized geometry's
// footing (conservative_foundation) and base width (high_reliability)
// beyond what the swarm found, re-clamping into the hard bounds
// afterward so the result stays a legal geometry (spec.md §6).
func applyFoundationAndReliabilityMargins(g route.TowerGeometry, voltageKV float64, flags route.Flags) route.TowerGeometry {
	if !flags.ConservativeFoundation && !flags.HighReliability {
		return g
	}
	if flags.ConservativeFoundation {
		g.FootingDepth *= 1.15
		g.FootingLength *= 1.10
		g.FootingWidth *= 1.10
	}
	if flags.HighReliability {
		g.BaseWidth *= 1.05
	}
	return g.Clamp(voltageKV)
}
