// Package sizer implements the particle-swarm tower-geometry optimizer
// (spec.md C8): 30 particles, 100 iterations, searching the six-
// dimensional geometry space (height, base width, span, and the three
// footing dimensions) for the cheapest design that the fitness function
// reports as safe.
//
// What:
//
//   - PSO.Run drives the swarm: each particle's position is decoded to a
//     route.TowerGeometry and bounds-clamped on every single update
//     (spec.md §4.8's "bounds enforcement is mandatory on decode" —
//     skipping it even once lets a particle's velocity carry a later
//     decode outside the hard envelope).
//   - Two running bests are tracked: the lowest-cost particle seen
//     regardless of safety, and the lowest-cost particle seen that the
//     fitness function reported safe (globalBestSafe). The optimizer reports
//     globalBestSafe; if none was ever found it substitutes
//     route.ConservativeFallback rather than return an unsafe design.
//
// Why:
//
//   - PSO requires no gradient of the cost/safety landscape, which suits
//     this domain: codestd's battery is a step function (safe/unsafe),
//     not a smooth penalty, so gradient-based search would have nothing
//     to follow.
package sizer
