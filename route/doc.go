// Package route defines the shared data model for the transmission-line
// placement-and-sizing pipeline: the inbound Route and TerrainProfile, the
// ForbiddenZone overlays consumed by the obstacle map, the TowerStation and
// TowerGeometry records produced by the spotter and sizer, and the
// CanonicalResult the aggregator emits.
//
// Route points and terrain profiles are immutable once constructed; builder
// methods return a new, validated value rather than mutating in place,
// mirroring the teacher's Clone/CloneEmpty convention for graphs that are
// built once and then read many times.
package route
