// Package spotter places tower stations along a route (spec.md C6). Both
// algorithms score every candidate span against a terrain profile and a
// SpanContext (the governing code standard, cost rates, and conductor
// profile): SpanContext.Standard may be nil, in which case scoreSpan
// treats every span as safe and both algorithms degrade to a purely
// obstacle/terrain-shape driven placement with no cost comparison.
//
//   - Simple: a single forward pass. From the last placed station, every
//     candidate span (longest to shortest) is stepped back off forbidden
//     zones and terrain-clearance failures and scored against C3/C4; the
//     cheapest safe candidate is taken, falling back to the shortest
//     feasible one (flagged) if none is safe. This is the specified
//     fallback used when SectionBased cannot produce a feasible layout.
//   - SectionBased: the default. Mandatory corner points are merged into
//     a skeleton, the skeleton splits the route into strain sections,
//     each section's spans are optimized (interior sections via the
//     minimum-tower-count formula, the first/last via smart-slack
//     redistribution), any span that cannot clear the terrain profile
//     within the hard tower-height bound is subdivided, and every
//     station is then precisely placed with jitter to clear nearby
//     obstacles.
//
// Why two algorithms: Simple's per-step greedy choice can leave a long
// thin slice of a section that section-level redistribution would have
// caught early; it trades optimality for not needing a full section
// layout up front.
package spotter
