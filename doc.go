// Package translineopt is a decision-support engine for high-voltage
// transmission-line corridor design.
//
// Given a route as an ordered sequence of coordinates, a voltage class,
// and site context (terrain, wind zone, soil, right-of-way mode), the
// engine places tower stations along the route, classifies each
// station's structural role, sizes a cheapest-safe tower geometry for
// every station with a particle-swarm optimiser, and aggregates the
// result into line-level cost and safety summaries.
//
// Subpackages are organized by pipeline stage:
//
//	geo/       — great-circle distance and polyline interpolation primitives
//	physics/   — conductor sag, required electrical clearance, ruling span
//	codestd/   — the IS/IEC/EUROCODE/ASCE code-engine battery
//	cost/      — per-tower and line-level cost model
//	obstacle/  — forbidden-zone map, steep-slope detection, safe-spot search
//	spotter/   — auto-placement of tower stations along a route
//	towertype/ — suspension/angle/tension/dead-end classification
//	sizer/     — the per-tower PSO geometry optimiser
//	aggregate/ — canonical-result assembly and the safe-on-the-wire invariant
//	reference/ — regional standard/rate/currency/risk resolution
//	route/     — the shared data model all of the above operate on
//	engine/    — orchestrates every stage above into one pipeline run
//
// A request is handled single-threaded from start to finish; runtime
// failures inside the pipeline never propagate as errors, they degrade
// to a conservative, explicitly-flagged design instead. See engine's
// package doc for the concurrency and degradation model.
package translineopt
