package towertype

import "github.com/katalvlaran/translineopt/route"

// Deviation-angle thresholds, degrees, separating the three in-line
// tower roles (spec.md C7). A station at or beyond AngleMaxDeg still
// only becomes Tension, not DeadEnd; DeadEnd is reserved for the
// physical line ends regardless of angle.
const (
	SuspensionMaxDeg = 5.0
	AngleMaxDeg      = 30.0
)

// Classify returns the structural role for a station given its
// deviation angle and whether it is a line endpoint or a strain-section
// boundary (spec.md C7). Precedence: line end beats everything else;
// section boundary beats the angle-only classification; otherwise the
// angle thresholds decide: <5° suspension, [5°, 30°) angle, ≥30° tension.
//
// Complexity: O(1).
func Classify(deviationAngleDeg float64, isLineEnd, isStrainSectionBoundary bool) route.TowerType {
	if isLineEnd {
		return route.DeadEnd
	}
	if isStrainSectionBoundary {
		return route.Tension
	}
	switch {
	case deviationAngleDeg < SuspensionMaxDeg:
		return route.Suspension
	case deviationAngleDeg < AngleMaxDeg:
		return route.Angle
	default:
		return route.Tension
	}
}
