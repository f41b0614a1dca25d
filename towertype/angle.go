package towertype

import "math"

// bearingDeg returns the initial compass bearing, in degrees [0, 360),
// from (lat1, lon1) to (lat2, lon2).
func bearingDeg(lat1, lon1, lat2, lon2 float64) float64 {
	const deg2rad = math.Pi / 180.0
	phi1 := lat1 * deg2rad
	phi2 := lat2 * deg2rad
	dLambda := (lon2 - lon1) * deg2rad

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	theta := math.Atan2(y, x) / deg2rad

	return math.Mod(theta+360, 360)
}

// DeviationAngle returns the horizontal deviation angle, in degrees, a
// station at (lat, lon) makes between its incoming bearing (from prev)
// and outgoing bearing (to next). 0 means the line runs straight through
// the station; 180 would mean a full reversal (never expected in a real
// route).
//
// Complexity: O(1).
func DeviationAngle(prevLat, prevLon, lat, lon, nextLat, nextLon float64) float64 {
	incoming := bearingDeg(prevLat, prevLon, lat, lon)
	outgoing := bearingDeg(lat, lon, nextLat, nextLon)

	diff := math.Mod(outgoing-incoming+540, 360) - 180

	return math.Abs(diff)
}
