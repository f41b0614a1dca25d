package physics

// ConductorParams is the per-conductor mechanical profile Sag and
// RulingSpan are evaluated against.
type ConductorParams struct {
	WeightPerMeter float64 // N/m, includes ice/wind load already folded in by the caller
	TensionNewtons float64 // horizontal tension component, N
}

// Sag returns the parabolic mid-span sag in meters for a level span of
// length spanM under cp, S = w·L²/(8·T) (spec.md C2).
//
// Complexity: O(1).
func Sag(spanM float64, cp ConductorParams) (float64, error) {
	if cp.TensionNewtons <= 0 {
		return 0, ErrNonPositiveTension
	}
	if spanM <= 0 {
		return 0, ErrNonPositiveSpan
	}

	return cp.WeightPerMeter * spanM * spanM / (8 * cp.TensionNewtons), nil
}

// MidSpanClearance returns the vertical clearance, in meters, between the
// conductor and the ground at mid-span, given the attachment heights and
// ground elevations at each tower and the span's sag (spec.md C2). Level
// and near-level spans both use the midpoint of the two attachment
// heights as the catenary low-point approximation.
//
// Complexity: O(1).
func MidSpanClearance(attachHeightA, groundElevA, attachHeightB, groundElevB, sag float64) float64 {
	conductorMidElevation := (groundElevA+attachHeightA+groundElevB+attachHeightB)/2 - sag
	groundMidElevation := (groundElevA + groundElevB) / 2

	return conductorMidElevation - groundMidElevation
}
