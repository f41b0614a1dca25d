// Package obstacle maintains the forbidden-zone interval map a route's
// obstacles project onto (spec.md C5): overlapping zones of the same
// kind are merged into one, a distance query reports whether it falls
// inside any zone, and SafeSpot performs the bounded nearest-safe-point
// search both placement algorithms use to nudge a station off an
// obstacle.
//
// What:
//
//   - Map: a sorted, same-kind-merged set of route.ForbiddenZone.
//   - SafeSpot: O(shift/step) outward search from a candidate distance.
//   - DetectSteepSlope: derives ForbiddenZone entries from a terrain
//     profile's local gradient, the one obstacle kind this system
//     computes itself rather than taking as input.
//
// Why:
//
//   - Merging same-kind overlaps keeps every downstream bounded search
//     O(zones) instead of re-scanning raw, possibly-overlapping input.
package obstacle
