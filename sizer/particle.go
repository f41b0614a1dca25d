package sizer

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// particle is one swarm member's position, velocity, and personal best.
type particle struct {
	pos      [dims]float64
	vel      [dims]float64
	bestPos  [dims]float64
	bestCost float64
	bestSafe bool
}

// newParticle initializes a particle at a uniformly random position
// within the lower quartile of [lo, hi], with zero initial velocity.
// Spec.md §4.8's initialisation bias favours cheap (and potentially
// risky) starting points, relying on the code engine to push the swarm
// back into feasibility.
func newParticle(lo, hi [dims]float64, rng *rand.Rand) particle {
	var p particle
	for i := 0; i < dims; i++ {
		p.pos[i] = lo[i] + rng.Float64()*0.25*(hi[i]-lo[i])
	}
	p.bestPos = p.pos
	p.bestCost = infinity

	return p
}

// updateVelocity applies the standard PSO velocity update using gonum's
// floats package for the elementwise vector arithmetic: inertia times the
// current velocity, plus a cognitive pull toward the particle's own best,
// plus a social pull toward the swarm's best.
func (p *particle) updateVelocity(globalBest [dims]float64, w, c1, c2 float64, rng *rand.Rand) {
	inertia := p.vel[:]
	floats.Scale(w, inertia)

	cognitive := make([]float64, dims)
	copy(cognitive, p.bestPos[:])
	floats.Sub(cognitive, p.pos[:])
	floats.Scale(c1*rng.Float64(), cognitive)

	social := make([]float64, dims)
	copy(social, globalBest[:])
	floats.Sub(social, p.pos[:])
	floats.Scale(c2*rng.Float64(), social)

	floats.Add(inertia, cognitive)
	floats.Add(inertia, social)
	copy(p.vel[:], inertia)
}

// step advances the particle's position by its velocity. Bounds are not
// applied here: decode() always clamps, so an out-of-bounds position is
// corrected the moment it is evaluated, never carried forward unclamped.
func (p *particle) step() {
	for i := 0; i < dims; i++ {
		p.pos[i] += p.vel[i]
	}
}

const infinity = 1e300
