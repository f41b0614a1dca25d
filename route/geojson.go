package route

import geojson "github.com/paulmach/go.geojson"

// GeoPolyline wraps a GeoJSON LineString geometry, used purely for
// visualization payloads (ForbiddenZone.Geometry). Nothing in the core pipeline reads coordinates out of
// it — it is an opaque pass-through the way spec.md §3 describes it
// ("optional polyline geometry for visualisation").
type GeoPolyline struct {
	geometry *geojson.Geometry
}

// NewGeoPolyline builds a GeoPolyline from an ordered list of (lon, lat)
// pairs, matching the [lon, lat] ordering GeoJSON and the valhalla Point
// wire shape both use.
func NewGeoPolyline(lonLat [][2]float64) *GeoPolyline {
	coords := make([][]float64, len(lonLat))
	for i, p := range lonLat {
		coords[i] = []float64{p[0], p[1]}
	}
	return &GeoPolyline{geometry: geojson.NewLineStringGeometry(coords)}
}

// MarshalJSON delegates to the underlying geojson.Geometry so a
// ForbiddenZone serializes its visualization shape as standard GeoJSON.
func (g *GeoPolyline) MarshalJSON() ([]byte, error) {
	if g == nil || g.geometry == nil {
		return []byte("null"), nil
	}
	return g.geometry.MarshalJSON()
}
