// Package physics implements the conductor-mechanics primitives the
// spotter and sizer packages build on: parabolic sag, the voltage/span
// electrical-clearance lookup, and ruling-span consolidation across a
// strain section.
//
// What
//
//   - Sag: the parabolic approximation S = w·L²/(8·T), valid for the
//     span lengths this system designs (span/sag ratios well above the
//     catenary-vs-parabola divergence point).
//   - RequiredClearance: the minimum conductor-to-ground clearance for a
//     given voltage class and span, bracketed from a reference table.
//   - RulingSpan: the equivalent span √(ΣLᵢ³/ΣLᵢ) a strain section's
//     suspension towers are mechanically designed against, so a single
//     sag/tension calculation stands in for every span in the section.
//
// Why
//
//   - A transmission line's suspension towers cannot each carry their own
//     span's exact tension without accumulating longitudinal stress at
//     every insulator; ruling span is the standard industry
//     simplification that avoids that.
package physics
