package obstacle

import "github.com/katalvlaran/translineopt/route"

// DetectSteepSlope scans each pair of consecutive profile points for a
// grade of at least maxGradePct, and returns each such stretch as an
// ObstacleSteepSlope ForbiddenZone, stretched to at least windowM meters
// long (spec.md C5, the
// one obstacle kind this system derives rather than ingests). Adjacent
// exceedances are merged by NewMap's same-kind merge once the caller
// folds this output into the full obstacle set.
//
// Complexity: O(n) over the profile's points.
func DetectSteepSlope(profile *route.TerrainProfile, windowM, maxGradePct float64) []route.ForbiddenZone {
	if profile == nil || profile.Len() < 2 {
		return nil
	}
	points := profile.Points()

	var zones []route.ForbiddenZone
	for i := 1; i < len(points); i++ {
		run := points[i].Distance - points[i-1].Distance
		if run <= 0 {
			continue
		}
		grade := absFloat(points[i].Elevation-points[i-1].Elevation) / run * 100
		if grade < maxGradePct {
			continue
		}
		start := points[i-1].Distance
		end := points[i].Distance
		if end-start < windowM {
			end = start + windowM
		}
		zones = append(zones, route.ForbiddenZone{
			Start: start,
			End:   end,
			Kind:  route.ObstacleSteepSlope,
			Name:  "steep slope",
		})
	}

	return zones
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
