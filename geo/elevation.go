package geo

import (
	"github.com/katalvlaran/translineopt/route"
)

// InterpolateElevation returns the linearly-interpolated ground elevation
// at distance d along profile (spec.md C1). d must lie within
// [0, profile's last distance]; out-of-range queries return
// ErrDistanceOutOfRange rather than extrapolating.
//
// Complexity: O(log n) via binary search over the monotone distance axis.
func InterpolateElevation(profile *route.TerrainProfile, d float64) (float64, error) {
	if profile == nil || profile.Len() == 0 {
		return 0, ErrEmptyProfile
	}
	points := profile.Points()
	if d < points[0].Distance || d > points[len(points)-1].Distance {
		return 0, ErrDistanceOutOfRange
	}

	lo, hi := 0, len(points)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if points[mid].Distance < d {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if points[lo].Distance == d || lo == 0 {
		return points[lo].Elevation, nil
	}
	prev, next := points[lo-1], points[lo]
	span := next.Distance - prev.Distance
	if span <= 0 {
		return prev.Elevation, nil
	}
	frac := (d - prev.Distance) / span

	return prev.Elevation + frac*(next.Elevation-prev.Elevation), nil
}
