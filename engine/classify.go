package engine

import (
	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/towertype"
)

// classifyStations assigns a structural role to every station distance
// (spec.md C7). Interior stations need the deviation angle formed by the
// station and its immediate neighbours; when any of the three lacks a
// GPS fix the angle cannot be computed and the station defaults to
// Suspension, per spec.md §4.7.
func classifyStations(points []route.RoutePoint, distances []float64) (types []route.TowerType, angles []float64) {
	types = make([]route.TowerType, len(distances))
	angles = make([]float64, len(distances))
	for i, d := range distances {
		isLineEnd := i == 0 || i == len(distances)-1
		angle := 0.0
		if !isLineEnd {
			if a, ok := station(points, distances[i-1]); ok {
				if b, ok := station(points, d); ok {
					if c, ok := station(points, distances[i+1]); ok {
						angle = towertype.DeviationAngle(a.lat, a.lon, b.lat, b.lon, c.lat, c.lon)
					}
				}
			}
		}
		angles[i] = angle
		types[i] = towertype.Classify(angle, isLineEnd, false)
	}
	return types, angles
}

type latLon struct{ lat, lon float64 }

func station(points []route.RoutePoint, d float64) (latLon, bool) {
	lat, lon := interpolateLatLon(points, d)
	if lat == nil || lon == nil {
		return latLon{}, false
	}
	return latLon{lat: *lat, lon: *lon}, true
}
