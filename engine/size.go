package engine

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/translineopt/codestd"
	"github.com/katalvlaran/translineopt/cost"
	"github.com/katalvlaran/translineopt/route"
)

// sizeOutcome is one station's C8 result plus the bookkeeping C9 needs:
// whether a conservative fallback was substituted and what codestd found
// before that substitution (spec.md §4.8/§4.9/§7's GoverningLoadCase).
type sizeOutcome struct {
	geometry          route.TowerGeometry
	usedFallback      bool
	governingLoadCase string
	violations        []string
	optimization      route.OptimizationTrace
}

// convergenceTraceLen bounds how much of the swarm's per-iteration
// history rides on the wire; spec.md §4.8 asks for "iterations and a
// truncated convergence history", not the full run.
const convergenceTraceLen = 10

func truncateHistory(history []float64) []float64 {
	if len(history) <= convergenceTraceLen {
		return append([]float64{}, history...)
	}
	return append([]float64{}, history[len(history)-convergenceTraceLen:]...)
}

// sizeStation runs the PSO swarm for one station's tower type and span,
// then snaps the winning geometry's span to the station's actual spotted
// spacing (the swarm searches span as a free dimension; the station's
// physical spacing is already fixed by the spotter) and re-validates
// against the code standard once more before handing back to the
// aggregator.
func (e *Engine) sizeStation(ctx context.Context, std codestd.Standard, towerType route.TowerType, req *route.Request, actualSpanM float64, rates cost.Rates, rng *rand.Rand) sizeOutcome {
	checkCtx := codestd.CheckContext{
		VoltageKV:      req.VoltageKV,
		SpanLength:     actualSpanM,
		WindZone:       escalateWindZone(req.WindZone, req.Flags.DesignForHigherWind),
		Soil:           req.Soil,
		IncludeIceLoad: req.Flags.IncludeIceLoad,
		Terrain:        req.Terrain,
	}

	// fitness is the PSO's per-candidate objective (spec.md §4.8): a
	// clearance violation (the only critical class) sentinels the cost
	// outright; any other violation is left unpenalised here and caught
	// by the final battery pass below once the swarm converges.
	fitness := func(g route.TowerGeometry) (float64, bool) {
		g.Type = towerType
		result := codestd.RunChecks(std, g, checkCtx)
		if codestd.HasClearanceViolation(result.Violations) {
			return cost.InfeasibleCost, false
		}
		return cost.CostPerKM(g, req.RowMode, rates), true
	}

	psoResult, err := e.opts.PSO.Run(ctx, towerType, req.VoltageKV, fitness, rng)
	if err != nil {
		return sizeOutcome{
			geometry:          route.ConservativeFallback(towerType, req.VoltageKV),
			usedFallback:      true,
			governingLoadCase: "optimiser cancelled: " + err.Error(),
			optimization: route.OptimizationTrace{
				Iterations:         psoResult.Iterations,
				ConvergenceHistory: truncateHistory(psoResult.ConvergenceHistory),
			},
		}
	}

	geometry := psoResult.Geometry
	if !psoResult.UsedFallback && actualSpanM > 0 {
		geometry.SpanLength = actualSpanM
		geometry = geometry.Clamp(req.VoltageKV)
	}
	geometry = applyFoundationAndReliabilityMargins(geometry, req.VoltageKV, req.Flags)

	trace := route.OptimizationTrace{
		Iterations:         psoResult.Iterations,
		ConvergenceHistory: truncateHistory(psoResult.ConvergenceHistory),
	}

	finalCheck := codestd.RunChecks(std, geometry, checkCtx)
	if psoResult.UsedFallback || !finalCheck.Safe {
		return sizeOutcome{
			geometry:          route.ConservativeFallback(towerType, req.VoltageKV),
			usedFallback:      true,
			governingLoadCase: firstOrEmpty(finalCheck.Violations),
			violations:        finalCheck.Violations,
			optimization:      trace,
		}
	}

	return sizeOutcome{geometry: geometry, usedFallback: false, optimization: trace}
}

func firstOrEmpty(violations []string) string {
	if len(violations) == 0 {
		return ""
	}
	return violations[0]
}
