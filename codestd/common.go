package codestd

import (
	"fmt"

	"github.com/katalvlaran/translineopt/physics"
	"github.com/katalvlaran/translineopt/route"
)

// The checkHeight*/checkBaseWidth*/... factories below are the shared
// building blocks every Standard's battery is assembled from; the safety
// margins differ per standard, and only some batteries include
// checkIceLoadFooting.

// checkHeightFloor rejects a geometry whose height sits below the
// voltage floor inflated by marginFactor (1.0 = no margin).
func checkHeightFloor(marginFactor float64) Check {
	return func(g route.TowerGeometry, ctx CheckContext) []string {
		floor := route.VoltageMinHeight(ctx.VoltageKV) * marginFactor
		if g.TotalHeight < floor {
			return []string{fmt.Sprintf("tower_height %.2fm below required floor %.2fm", g.TotalHeight, floor)}
		}
		return nil
	}
}

// checkBaseWidthRatio rejects a geometry whose base width falls short of
// the tower type's minimum ratio, inflated by marginFactor for wind-zone
// load.
func checkBaseWidthRatio(marginFactor float64) Check {
	return func(g route.TowerGeometry, ctx CheckContext) []string {
		required := g.Type.BaseWidthRatio() * g.TotalHeight * marginFactor * ctx.WindMultiplier()
		if g.BaseWidth < required {
			return []string{fmt.Sprintf("base_width %.2fm below %s required %.2fm", g.BaseWidth, g.Type, required)}
		}
		return nil
	}
}

// checkFootingDepth rejects a geometry whose footing depth, after the
// context's soil factor, falls short of route.MinFootingDepth.
func checkFootingDepth(marginFactor float64) Check {
	return func(g route.TowerGeometry, ctx CheckContext) []string {
		required := route.MinFootingDepth * ctx.SoilFootingFactor() * marginFactor
		if g.FootingDepth < required {
			return []string{fmt.Sprintf("footing_depth %.2fm below required %.2fm for %s soil", g.FootingDepth, ctx.Soil, required)}
		}
		return nil
	}
}

// checkSpanBounds rejects a span outside the hard [MinSpanLength,
// MaxSpanLength] envelope, every standard enforces this identically.
func checkSpanBounds() Check {
	return func(g route.TowerGeometry, ctx CheckContext) []string {
		if g.SpanLength < route.MinSpanLength || g.SpanLength > route.MaxSpanLength {
			return []string{fmt.Sprintf("span_length %.1fm outside [%.0f, %.0f]", g.SpanLength, route.MinSpanLength, route.MaxSpanLength)}
		}
		return nil
	}
}

// clearanceViolationPrefix tags every violation checkElectricalClearance
// produces. Clearance is the one critical violation class (spec.md
// §4.8): IsClearanceViolation uses this prefix to tell it apart from the
// rest without the caller needing to know the check's exact wording.
const clearanceViolationPrefix = "estimated clearance"

// checkElectricalClearance rejects a geometry whose total height does
// not leave at least physics.RequiredClearance above the maximum sag for
// its span (marginM adds a standard-specific extra margin).
func checkElectricalClearance(marginM float64) Check {
	return func(g route.TowerGeometry, ctx CheckContext) []string {
		required := physics.RequiredClearance(ctx.VoltageKV, g.SpanLength) + marginM
		// Ground clearance available: height minus a conservative sag
		// estimate (worst-case mid-span dip taken as 5% of span here, the
		// sizer supplies the exact sag once conductor tension is known).
		estimatedSag := 0.05 * g.SpanLength
		available := g.TotalHeight - estimatedSag
		if available < required {
			return []string{fmt.Sprintf("%s %.2fm below required %.2fm", clearanceViolationPrefix, available, required)}
		}
		return nil
	}
}

// checkIceLoadFooting adds an extra footing-depth requirement when the
// context calls for ice loading; standards that do not model ice simply
// never include this check in their battery.
func checkIceLoadFooting(extraDepthM float64) Check {
	return func(g route.TowerGeometry, ctx CheckContext) []string {
		if !ctx.IncludeIceLoad {
			return nil
		}
		required := route.MinFootingDepth + extraDepthM
		if g.FootingDepth < required {
			return []string{fmt.Sprintf("footing_depth %.2fm below ice-load minimum %.2fm", g.FootingDepth, required)}
		}
		return nil
	}
}
