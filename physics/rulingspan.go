package physics

import "math"

// RulingSpan returns the equivalent span, in meters, for a strain section
// made up of spans, √(ΣLᵢ³/ΣLᵢ) (spec.md C2). A strain section is the run
// of suspension spans between two anchor (dead-end/tension) towers; every
// span in the section must be positive.
//
// Complexity: O(n).
func RulingSpan(spans []float64) (float64, error) {
	if len(spans) == 0 {
		return 0, ErrEmptySpanSet
	}
	var cubeSum, linSum float64
	for _, l := range spans {
		if l <= 0 {
			return 0, ErrNonPositiveSpan
		}
		cubeSum += l * l * l
		linSum += l
	}

	return math.Sqrt(cubeSum / linSum), nil
}

// StrainSections splits an ordered list of spans into sections at each
// anchor index (spec.md C2): anchorAfter[i] true means the tower *ending*
// span i and *starting* span i+1 is an anchor, so the current section
// closes with span i and a new one begins at span i+1. The first and last towers of the whole line are always
// implicit anchors and do not need to be listed.
//
// Complexity: O(n).
func StrainSections(spans []float64, anchorAfter []bool) [][]float64 {
	if len(spans) == 0 {
		return nil
	}
	var sections [][]float64
	start := 0
	for i := range spans {
		isBoundary := i == len(spans)-1
		if i < len(anchorAfter) && anchorAfter[i] {
			isBoundary = true
		}
		if isBoundary {
			sections = append(sections, spans[start:i+1])
			start = i + 1
		}
	}

	return sections
}
