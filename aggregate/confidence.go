package aggregate

import "github.com/katalvlaran/translineopt/route"

// ConfidenceInputs collects the assumption-weakening signals
// BuildConfidence decrements from a 100-start score (spec.md §4.9
// "confidence scoring").
type ConfidenceInputs struct {
	TowerCount           int
	FallbackCount        int
	ObstacleDataDegraded bool // obstacle fetch timed out or returned partial data
	UsedDefaultElevation bool // terrain profile was absent and elevation defaulted to 0
	UsedDefaultDistance  bool // at least one raw point's distance_m was resolved by haversine accumulation rather than supplied
}

// BuildConfidence scores the result's overall trustworthiness: each
// weakened assumption removes points and is named in Drivers so a caller
// can see why the score is not 100.
//
// Complexity: O(1).
func BuildConfidence(in ConfidenceInputs) route.ConfidenceScore {
	score := 100
	var drivers []string

	if in.TowerCount > 0 && in.FallbackCount > 0 {
		penalty := 5 * in.FallbackCount
		if penalty > 40 {
			penalty = 40
		}
		score -= penalty
		drivers = append(drivers, "conservative fallback used for one or more towers")
	}
	if in.ObstacleDataDegraded {
		score -= 15
		drivers = append(drivers, "obstacle data incomplete or fetched under degraded conditions")
	}
	if in.UsedDefaultElevation {
		score -= 10
		drivers = append(drivers, "elevation defaulted in the absence of a terrain profile")
	}
	if in.UsedDefaultDistance {
		score -= 5
		drivers = append(drivers, "distance resolved by great-circle accumulation rather than supplied")
	}
	if score < 0 {
		score = 0
	}

	return route.ConfidenceScore{Score: score, Drivers: drivers}
}
