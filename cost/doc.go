// Package cost implements the deterministic four-component cost model
// (spec.md C4): steel, foundation, erection, and land/corridor cost per
// tower, consolidated into a line-level CostBreakdown with a
// cost_per_km objective the optimizer minimizes.
//
// A geometry that falls outside codestd's safety battery after the
// sizer's conservative fallback is never costed as "cheap" by omission:
// TotalCost reports InfeasibleCost (1e10) for any geometry a caller
// marks infeasible, so the optimizer's fitness function always prefers
// any feasible design over an infeasible one, regardless of how small
// its raw components would otherwise compute to.
package cost
