package spotter

import (
	"github.com/katalvlaran/translineopt/codestd"
	"github.com/katalvlaran/translineopt/cost"
	"github.com/katalvlaran/translineopt/geo"
	"github.com/katalvlaran/translineopt/physics"
	"github.com/katalvlaran/translineopt/route"
)

// clearanceSampleStepM is how finely a candidate span's terrain is
// sampled for the worst-case mid-span clearance check (spec.md §4.6):
// fine enough to catch a hill cresting inside the span rather than just
// at its two endpoints, which is all physics.MidSpanClearance checks by
// itself.
const clearanceSampleStepM = 20.0

// SpanContext bundles the C3/C4 inputs a candidate span is scored
// against during placement (spec.md §4.6: "a candidate span is
// additionally evaluated against C3 and C4"). Classification (C7) has
// not run yet at placement time, so scoring always uses a conservative
// suspension-profile geometry; C8 resizes every station to its real
// type once classified.
type SpanContext struct {
	VoltageKV      float64
	WindZone       route.WindZone
	Soil           route.Soil
	IncludeIceLoad bool
	Terrain        route.Terrain
	Conductor      physics.ConductorParams
	Standard       codestd.Standard
	Rates          cost.Rates
	RowMode        route.RowMode
}

func (ctx SpanContext) checkContext(span float64) codestd.CheckContext {
	return codestd.CheckContext{
		VoltageKV:      ctx.VoltageKV,
		SpanLength:     span,
		WindZone:       ctx.WindZone,
		Soil:           ctx.Soil,
		IncludeIceLoad: ctx.IncludeIceLoad,
		Terrain:        ctx.Terrain,
	}
}

// requiredHeightForClearance returns the tower attachment height needed
// so the sagging conductor clears physics.RequiredClearance above every
// sampled terrain point between start and start+span. The sag profile
// between towers is approximated as the parabola physics.Sag itself
// models: zero at both ends, the full mid-span value at the centre
// (spec.md §4.6's "required-height-to-meet-clearance").
func requiredHeightForClearance(start, span float64, profile *route.TerrainProfile, voltageKV float64, conductor physics.ConductorParams) float64 {
	required := physics.RequiredClearance(voltageKV, span)
	sag, err := physics.Sag(span, conductor)
	if err != nil {
		sag = 0
	}
	needed := required + sag
	if profile == nil || span <= 0 {
		return needed
	}

	startGround, err := geo.InterpolateElevation(profile, start)
	if err != nil {
		return needed
	}
	for d := 0.0; d <= span; d += clearanceSampleStepM {
		ground, err := geo.InterpolateElevation(profile, start+d)
		if err != nil {
			continue
		}
		localSag := sag * 4 * d * (span - d) / (span * span)
		rise := ground - startGround
		if candidate := required + localSag + rise; candidate > needed {
			needed = candidate
		}
	}
	return needed
}

// conservativeSpanGeometry builds a suspension-profile geometry tall
// enough to clear requiredHeight, for the C3/C4 feasibility check.
func conservativeSpanGeometry(span, voltageKV, requiredHeight float64) route.TowerGeometry {
	g := route.ConservativeFallback(route.Suspension, voltageKV)
	g.SpanLength = span
	if requiredHeight > g.TotalHeight {
		g.TotalHeight = requiredHeight
	}
	return g.Clamp(voltageKV)
}

// scoreSpan runs the C3/C4 feasibility check spec.md §4.6 mandates for
// one already-chosen candidate span between start and start+span: the
// required clearance height is folded into a conservative geometry,
// checked against ctx.Standard (C3), and costed with cost.CostPerKM (C4)
// if safe. A required height beyond route.MaxTowerHeight means no tower
// at any height can clear this span's terrain, so it is unsafe outright.
func scoreSpan(start, span float64, profile *route.TerrainProfile, ctx SpanContext) (costPerKM float64, safe bool) {
	if ctx.Standard == nil {
		return 0, true
	}
	required := requiredHeightForClearance(start, span, profile, ctx.VoltageKV, ctx.Conductor)
	if required > route.MaxTowerHeight {
		return 0, false
	}
	g := conservativeSpanGeometry(span, ctx.VoltageKV, required)
	if !codestd.RunChecks(ctx.Standard, g, ctx.checkContext(span)).Safe {
		return 0, false
	}
	return cost.CostPerKM(g, ctx.RowMode, ctx.Rates), true
}

// clearanceOK reports whether some tower within the hard height bound
// can meet clearance across [start, start+span] given profile's terrain,
// independent of any code-standard battery.
func clearanceOK(start, span float64, profile *route.TerrainProfile, voltageKV float64, conductor physics.ConductorParams) bool {
	return requiredHeightForClearance(start, span, profile, voltageKV, conductor) <= route.MaxTowerHeight
}
