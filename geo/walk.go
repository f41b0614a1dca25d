package geo

import (
	"github.com/katalvlaran/translineopt/route"
)

// ResampledPoint is one output of WalkPolylineByDistance: an interpolated
// position at a fixed cumulative distance along a route.
type ResampledPoint struct {
	Distance float64
	Lat      float64
	Lon      float64
}

// WalkPolylineByDistance resamples r at a fixed step (meters), linearly
// interpolating lat/lon between the bracketing route points. The last
// sample always lands exactly on r.Length(), even if it falls short of a
// full step, so callers never silently lose the route's tail (spec.md C1).
//
// Complexity: O(n + r.Length()/step).
func WalkPolylineByDistance(r *route.Route, step float64) ([]ResampledPoint, error) {
	if r == nil || r.Len() == 0 {
		return nil, ErrEmptyProfile
	}
	if step <= 0 {
		return nil, ErrNonPositiveStep
	}
	points := r.Points()
	length := r.Length()

	out := make([]ResampledPoint, 0, int(length/step)+2)
	seg := 0
	for d := 0.0; d <= length; d += step {
		for seg < len(points)-2 && points[seg+1].Distance < d {
			seg++
		}
		p, err := interpolatePoint(points, seg, d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out) == 0 || out[len(out)-1].Distance < length {
		p, err := interpolatePoint(points, seg, length)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func interpolatePoint(points []route.RoutePoint, seg int, d float64) (ResampledPoint, error) {
	a, b := points[seg], points[seg+1]
	if a.Lat == nil || a.Lon == nil || b.Lat == nil || b.Lon == nil {
		return ResampledPoint{}, ErrMissingCoordinates
	}
	span := b.Distance - a.Distance
	frac := 0.0
	if span > 0 {
		frac = (d - a.Distance) / span
	}
	return ResampledPoint{
		Distance: d,
		Lat:      *a.Lat + frac*(*b.Lat-*a.Lat),
		Lon:      *a.Lon + frac*(*b.Lon-*a.Lon),
	}, nil
}
