package cost

import "github.com/katalvlaran/translineopt/route"

// WidenSensitivity adds spec.md §4.9's context-driven widening on top of
// a base low/high band: +10pp mountainous terrain, +5pp soft soil,
// +5pp wind zones 3-4, +5pp voltage >=400kV, +5pp regional risk count
// over 3. Each condition is independent and additive.
func WidenSensitivity(lowPct, highPct float64, terrain route.Terrain, soil route.Soil, wind route.WindZone, voltageKV float64, riskCount int) (float64, float64) {
	var extra float64
	if terrain == route.TerrainMountainous {
		extra += 10
	}
	if soil == route.SoilSoft {
		extra += 5
	}
	if wind == route.WindZone3 || wind == route.WindZone4 {
		extra += 5
	}
	if voltageKV >= 400 {
		extra += 5
	}
	if riskCount > 3 {
		extra += 5
	}
	return lowPct + extra, highPct + extra
}

// sensitivityBand returns the low/high percentage band a cost estimate
// should be read with, widening as the design relies more heavily on
// conservative-fallback towers (spec.md §4.9 "cost sensitivity banding"):
// a line with no fallbacks is an optimizer-found design and gets the
// tightest band; every fallback tower adds uncertainty since its
// geometry was substituted rather than optimized.
func sensitivityBand(towerCount, fallbackCount int) (lowPct, highPct float64) {
	if towerCount == 0 {
		return 10, 25
	}
	fallbackRatio := float64(fallbackCount) / float64(towerCount)

	lowPct = 8 + 7*fallbackRatio
	highPct = 15 + 20*fallbackRatio

	return lowPct, highPct
}
