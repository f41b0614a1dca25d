// impl_asce.go - ASCE (ASCE 74, US practice) battery.
//
// Contract:
//   - Base width carries the largest margin in the registry (10%): ASCE
//     74's wind-load provisions are written around extreme-event load
//     cases (hurricane corridors), so the shared WindMultiplier already
//     folded into checkBaseWidthRatio is deliberately amplified here.
//   - No ice-load check: ASCE 74 handles ice loading through a separate
//     combined ice-and-wind load case this system's scope does not model
//     (spec.md Non-goals).
package codestd

// ASCE implements Standard for ASCE 74 (US overhead-line guideline).
type ASCE struct{}

// Name returns "ASCE".
func (ASCE) Name() string { return "ASCE" }

// Battery returns ASCE 74's ordered check battery.
func (ASCE) Battery() []Check {
	return []Check{
		checkHeightFloor(1.0),
		checkBaseWidthRatio(1.10),
		checkFootingDepth(1.0),
		checkSpanBounds(),
		checkElectricalClearance(0.1),
	}
}
