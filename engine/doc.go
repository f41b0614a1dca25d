// Package engine orchestrates one placement-and-sizing request end to
// end (spec.md §2, §5): obstacle mapping, auto-spotting, tower-type
// classification, per-tower sizing, and aggregation, in that strict
// sequential order. A request is single-threaded from start to finish;
// concurrent requests share no mutable state beyond the immutable
// reference tables loaded once at construction.
//
// The only suspension point is the obstacle map's external-overlay
// fetch, bounded by a configurable timeout; on timeout the pipeline
// degrades to steep-slope-only obstacle detection and records the
// degradation in the result's confidence drivers rather than failing
// the request.
//
// Every structured log entry uses github.com/sirupsen/logrus and is
// tagged with a github.com/google/uuid request ID, the same identifier
// threaded through the returned route.CanonicalResult.
package engine
