package engine

import (
	"github.com/katalvlaran/translineopt/geo"
	"github.com/katalvlaran/translineopt/route"
)

// resolvedRoute bundles the route/terrain pair built from a request's
// raw points, plus which defaulting rules fired along the way — both
// feed aggregate.ConfidenceInputs (spec.md §4.9).
type resolvedRoute struct {
	route                *route.Route
	terrain              *route.TerrainProfile
	usedDefaultDistance  bool
	usedDefaultElevation bool
}

// resolveRoute fills in any missing distance_m (via great-circle
// accumulation) and elevation (defaulted to 0) on req's raw points, then
// builds the immutable route.Route and route.TerrainProfile the rest of
// the pipeline works from (spec.md §4.1, §6).
func resolveRoute(req *route.Request) (resolvedRoute, error) {
	n := len(req.RawPoints)
	lats := make([]float64, n)
	lons := make([]float64, n)
	for i, p := range req.RawPoints {
		lats[i], lons[i] = p.Lat, p.Lon
	}
	accumulated := geo.AccumulateDistances(lats, lons)

	usedDefaultDistance := false
	usedDefaultElevation := false
	points := make([]route.RoutePoint, n)
	terrainPoints := make([]route.TerrainPoint, n)
	for i, p := range req.RawPoints {
		d := accumulated[i]
		if p.DistanceM != nil {
			d = *p.DistanceM
		} else {
			usedDefaultDistance = true
		}
		elevation := 0.0
		if p.Elevation != nil {
			elevation = *p.Elevation
		} else {
			usedDefaultElevation = true
		}
		lat, lon := p.Lat, p.Lon
		points[i] = route.RoutePoint{Lat: &lat, Lon: &lon, Elevation: elevation, Distance: d}
		terrainPoints[i] = route.TerrainPoint{Distance: d, Elevation: elevation, Lat: &lat, Lon: &lon}
	}

	rt, err := route.NewRoute(points)
	if err != nil {
		return resolvedRoute{}, err
	}
	terrain, err := route.NewTerrainProfile(terrainPoints)
	if err != nil {
		return resolvedRoute{}, err
	}

	return resolvedRoute{
		route:                rt,
		terrain:              terrain,
		usedDefaultDistance:  usedDefaultDistance,
		usedDefaultElevation: usedDefaultElevation,
	}, nil
}
