package engine

import "github.com/katalvlaran/translineopt/route"

// interpolateLatLon returns the linearly-interpolated coordinate at
// cumulative distance d along points, bracketing d between the nearest
// two points the same way geo.WalkPolylineByDistance does for its fixed
// step walk; here d is an arbitrary station distance rather than a
// regular step. Returns nil, nil when either bracketing point lacks a
// GPS fix.
func interpolateLatLon(points []route.RoutePoint, d float64) (*float64, *float64) {
	if len(points) == 0 {
		return nil, nil
	}
	seg := 0
	for seg < len(points)-2 && points[seg+1].Distance < d {
		seg++
	}
	a, b := points[seg], points[min(seg+1, len(points)-1)]
	if a.Lat == nil || a.Lon == nil || b.Lat == nil || b.Lon == nil {
		return nil, nil
	}
	span := b.Distance - a.Distance
	frac := 0.0
	if span > 0 {
		frac = (d - a.Distance) / span
	}
	lat := *a.Lat + frac*(*b.Lat-*a.Lat)
	lon := *a.Lon + frac*(*b.Lon-*a.Lon)
	return &lat, &lon
}

// interpolateElevation returns the linearly-interpolated elevation at
// cumulative distance d, bracketing the same way interpolateLatLon does.
// Elevation is always populated on route.RoutePoint (defaulted to 0
// upstream), so this never fails the way the lat/lon variant can.
func interpolateElevation(points []route.RoutePoint, d float64) float64 {
	if len(points) == 0 {
		return 0
	}
	seg := 0
	for seg < len(points)-2 && points[seg+1].Distance < d {
		seg++
	}
	a, b := points[seg], points[min(seg+1, len(points)-1)]
	span := b.Distance - a.Distance
	frac := 0.0
	if span > 0 {
		frac = (d - a.Distance) / span
	}
	return a.Elevation + frac*(b.Elevation-a.Elevation)
}
