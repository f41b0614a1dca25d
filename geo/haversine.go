package geo

import (
	"math"

	"github.com/katalvlaran/translineopt/route"
)

// Haversine returns the great-circle distance in meters between two
// (lat, lon) coordinates in degrees, using route.EarthRadiusMeters as the
// sphere radius (spec.md C1).
//
// Complexity: O(1).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const deg2rad = math.Pi / 180.0
	phi1 := lat1 * deg2rad
	phi2 := lat2 * deg2rad
	dPhi := (lat2 - lat1) * deg2rad
	dLambda := (lon2 - lon1) * deg2rad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return route.EarthRadiusMeters * c
}

// AccumulateDistances takes an ordered list of (lat, lon) coordinates and
// returns the cumulative haversine distance to each point, with the first
// entry always 0. This is the default distance_m resolver the engine
// applies when a RawPoint omits DistanceM (spec.md §4.1).
//
// Complexity: O(n).
func AccumulateDistances(lats, lons []float64) []float64 {
	out := make([]float64, len(lats))
	for i := 1; i < len(lats); i++ {
		out[i] = out[i-1] + Haversine(lats[i-1], lons[i-1], lats[i], lons[i])
	}
	return out
}
