package sizer

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/translineopt/route"
)

// FitnessFunc evaluates a candidate geometry and returns its cost_per_km
// (spec.md §4.4) and whether the geometry carries no clearance
// violation, the one critical class (spec.md §4.8) — not whether it
// passed the full safety battery; non-clearance violations are tolerated
// here and caught by a later full-battery pass. Lower cost is better;
// PSO never compares cost across the safe/unsafe boundary (spec.md
// §4.8's dual best-tracking contract) — an unsafe particle can never
// become globalBestSafe no matter how cheap it evaluates.
type FitnessFunc func(g route.TowerGeometry) (cost float64, safe bool)

// PSO holds the swarm's tunable parameters. Defaults() returns the
// spec's fixed configuration (30 particles, 100 iterations); this type
// still exposes the knobs so tests can run smaller swarms quickly.
type PSO struct {
	ParticleCount int
	Iterations    int
	Inertia       float64
	Cognitive     float64
	Social        float64
	StallWindow   int     // iterations over which globalBestSafe's improvement is measured before early stop
	StallDeltaMin float64 // minimum cost_per_km improvement over StallWindow iterations to keep going
}

// Defaults returns the spec-mandated PSO configuration (spec.md §4.8):
// 30 particles, 100 iterations, early stop when cost improvement over a
// 20-iteration window falls below 1000 currency-units/km.
func Defaults() PSO {
	return PSO{
		ParticleCount: 30,
		Iterations:    100,
		Inertia:       0.7,
		Cognitive:     1.5,
		Social:        1.5,
		StallWindow:   20,
		StallDeltaMin: 1000.0,
	}
}

// Result is PSO.Run's full output: the recommended geometry plus the
// diagnostics the aggregator and any caller-side reporting surfaces.
type Result struct {
	Geometry           route.TowerGeometry
	Cost               float64
	UsedFallback       bool
	ConvergenceHistory []float64 // best-safe cost per iteration, NaN-free: holds the running best even on stall
	Iterations         int       // actual iterations run, <= PSO.Iterations when early-stopped
}

// Run executes the swarm search for towerType at voltageKV, seeding each
// particle in the lower quartile of the geometry's hard bounds (see
// newParticle), and returns the
// best-found safe design (spec.md C8). ctx is checked once per
// iteration; cancellation returns the best result found so far with
// ctx.Err().
//
// Complexity: O(ParticleCount * Iterations * dims).
func (cfg PSO) Run(ctx context.Context, towerType route.TowerType, voltageKV float64, fitness FitnessFunc, rng *rand.Rand) (Result, error) {
	if fitness == nil {
		return Result{}, ErrNilFitness
	}
	if rng == nil {
		return Result{}, ErrNilRand
	}

	lo, hi := bounds(towerType, voltageKV)
	swarm := make([]particle, cfg.ParticleCount)
	for i := range swarm {
		swarm[i] = newParticle(lo, hi, rng)
	}

	var globalBest [dims]float64
	globalBestCost := infinity
	var globalBestSafe [dims]float64
	globalBestSafeCost := infinity
	haveSafe := false

	history := make([]float64, 0, cfg.Iterations)

	iter := 0
	for ; iter < cfg.Iterations; iter++ {
		select {
		case <-ctx.Done():
			return cfg.result(towerType, voltageKV, globalBestSafe, globalBestSafeCost, haveSafe, history, iter), ctx.Err()
		default:
		}

		for i := range swarm {
			g := decode(swarm[i].pos, towerType, voltageKV)
			// decode clamps g into bounds; rewrite pos from the clamped
			// geometry so personal/global-best captures (and the next
			// velocity update) never anchor on an illegal position
			// (spec.md §4.8's mandatory bounds-on-decode step).
			swarm[i].pos = encode(g)
			cost, safe := fitness(g)

			if cost < swarm[i].bestCost {
				swarm[i].bestCost = cost
				swarm[i].bestPos = encode(g)
				swarm[i].bestSafe = safe
			}
			if cost < globalBestCost {
				globalBestCost = cost
				globalBest = encode(g)
			}
			if safe && cost < globalBestSafeCost {
				globalBestSafeCost = cost
				globalBestSafe = encode(g)
				haveSafe = true
			}
		}

		history = append(history, globalBestSafeCost)
		// Early stop once cost_per_km improvement over the trailing
		// StallWindow iterations drops below StallDeltaMin (spec.md
		// §4.8): a magnitude threshold on windowed improvement, not a
		// reset on any improvement at all.
		if haveSafe && len(history) > cfg.StallWindow {
			windowStart := history[len(history)-cfg.StallWindow-1]
			if windowStart-globalBestSafeCost < cfg.StallDeltaMin {
				iter++
				break
			}
		}

		for i := range swarm {
			swarm[i].updateVelocity(globalBest, cfg.Inertia, cfg.Cognitive, cfg.Social, rng)
			swarm[i].step()
		}
	}

	return cfg.result(towerType, voltageKV, globalBestSafe, globalBestSafeCost, haveSafe, history, iter), nil
}

func (cfg PSO) result(towerType route.TowerType, voltageKV float64, bestSafe [dims]float64, bestSafeCost float64, haveSafe bool, history []float64, iterations int) Result {
	if !haveSafe {
		fallback := route.ConservativeFallback(towerType, voltageKV)
		return Result{
			Geometry:           fallback,
			Cost:               infinity,
			UsedFallback:       true,
			ConvergenceHistory: history,
			Iterations:         iterations,
		}
	}

	return Result{
		Geometry:           decode(bestSafe, towerType, voltageKV),
		Cost:               bestSafeCost,
		UsedFallback:       false,
		ConvergenceHistory: history,
		Iterations:         iterations,
	}
}
