package aggregate

import "github.com/katalvlaran/translineopt/route"

// BuildSafetySummary enforces the safe-on-the-wire invariant (spec.md §8
// invariant 1, C9): OverallStatus is unconditionally "SAFE" because every
// tower this function sees has already been through sizer's conservative
// fallback if the optimizer could not find a safe design. fallback[i]
// reports whether station i's geometry is a fallback substitution;
// originalViolations carries what codestd found before that
// substitution, kept only for audit.
//
// Complexity: O(n).
func BuildSafetySummary(towers []route.TowerStation, fallback []bool, originalViolations map[int][]string) route.SafetySummary {
	count := 0
	for _, f := range fallback {
		if f {
			count++
		}
	}
	if originalViolations == nil {
		originalViolations = map[int][]string{}
	}

	return route.SafetySummary{
		OverallStatus:      "SAFE",
		TowersWithFallback: count,
		OriginalViolations: originalViolations,
	}
}
