package sizer

import "github.com/katalvlaran/translineopt/route"

// dims is the fixed dimensionality of the PSO search space: total
// height, base width, span length, and the three footing dimensions.
const dims = 6

// bounds returns the per-dimension [lo, hi] search envelope for t at
// voltageKV, taken directly from route's hard geometry bounds so a
// particle can never search outside what Clamp would accept anyway.
func bounds(t route.TowerType, voltageKV float64) (lo, hi [dims]float64) {
	minHeight := route.VoltageMinHeight(voltageKV)
	lo = [dims]float64{
		minHeight,
		t.BaseWidthRatio() * minHeight,
		route.MinSpanLength,
		route.MinFootingLength,
		route.MinFootingWidth,
		route.MinFootingDepth,
	}
	hi = [dims]float64{
		route.MaxTowerHeight,
		route.MaxBaseWidthRatio * route.MaxTowerHeight,
		route.MaxSpanLength,
		route.MaxFootingLength,
		route.MaxFootingWidth,
		route.MaxFootingDepth,
	}
	return lo, hi
}

// decode maps a position vector to a route.TowerGeometry and clamps it
// into the hard bounds, the mandatory bounds-enforcement-on-decode step
// (spec.md §4.8).
func decode(pos [dims]float64, t route.TowerType, voltageKV float64) route.TowerGeometry {
	g := route.TowerGeometry{
		Type:           t,
		TotalHeight:    pos[0],
		BaseWidth:      pos[1],
		SpanLength:     pos[2],
		FoundationType: route.PadFooting,
		FootingLength:  pos[3],
		FootingWidth:   pos[4],
		FootingDepth:   pos[5],
	}
	return g.Clamp(voltageKV)
}

// encode is decode's inverse, used to write a clamped geometry back into
// a particle's position (and its personal-best position) after decode.
func encode(g route.TowerGeometry) [dims]float64 {
	return [dims]float64{g.TotalHeight, g.BaseWidth, g.SpanLength, g.FootingLength, g.FootingWidth, g.FootingDepth}
}
