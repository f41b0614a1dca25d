// Package aggregate assembles the per-tower and per-span results from
// spotter, sizer, and codestd into the line-level route.CanonicalResult
// (spec.md C9): line summary statistics, the safe-on-the-wire safety
// summary, and the confidence score a caller reads alongside the design.
//
// The one invariant every function in this package protects is
// "safe-on-the-wire" (spec.md §8 invariant 1): SafetySummary.OverallStatus
// is always "SAFE" because sizer never returns an unsafe geometry — a
// tower that could not be sized safely already received
// route.ConservativeFallback before it reaches this package. This
// package only records how many towers needed that fallback and what
// their original (pre-fallback) violations would have been, for audit.
package aggregate
