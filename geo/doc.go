// Package geo provides the geometric primitives the pipeline is built on:
// great-circle distance between coordinates, elevation lookup along a
// terrain profile, and distance-based resampling of a polyline.
//
// Every function here is a pure computation over route.Route /
// route.TerrainProfile values; nothing in this package performs I/O.
package geo
