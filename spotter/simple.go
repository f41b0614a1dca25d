package spotter

import (
	"github.com/katalvlaran/translineopt/obstacle"
	"github.com/katalvlaran/translineopt/route"
)

// Simple places stations with a single forward pass (spec.md C6): from
// the current station, every candidate span that fits and whose
// endpoint clears both the obstacle map and mid-span terrain clearance
// is scored against C3/C4 (bestNextStation); the cheapest safe candidate
// is chosen, falling back to the shortest obstacle-clear candidate
// (flagged unsafe) if none passes the safety battery. A span whose
// endpoint lands in a forbidden zone or fails clearance is stepped back
// in stepBackMeters increments (up to maxStepBacks) before it is given
// up on. The last station is always the route's endpoint. The engine
// falls back to it when SectionBased returns an error.
//
// unsafe[i] reports whether stations[i] was placed without a safe C3/C4
// candidate (always false for the two route endpoints).
//
// Complexity: O(stations * len(candidateSpans) * maxStepBacks).
func Simple(r *route.Route, obstacles *obstacle.Map, profile *route.TerrainProfile, ctx SpanContext) (stations []float64, unsafe []bool, err error) {
	if r == nil {
		return nil, nil, ErrNilRoute
	}
	length := r.Length()
	if length < route.MinSpanLength {
		return nil, nil, ErrRouteTooShort
	}

	stations = []float64{0}
	unsafe = []bool{false}
	cur := 0.0

	for length-cur > route.MinSpan {
		if length-cur <= route.MaxSpanLength {
			stations = append(stations, length)
			unsafe = append(unsafe, false)
			cur = length
			break
		}

		next, flagged, ok := bestNextStation(cur, length, obstacles, profile, ctx)
		if !ok {
			return nil, nil, ErrNoFeasibleSpan
		}
		cur = next
		stations = append(stations, cur)
		unsafe = append(unsafe, flagged)
	}

	if stations[len(stations)-1] != length {
		stations = append(stations, length)
		unsafe = append(unsafe, false)
	}

	return stations, unsafe, nil
}

// bestNextStation scores every candidate span, optionally stepped back
// off an obstacle or a terrain clearance failure, against C3/C4
// (spec.md §4.6: "for each of {300,340,380,420,450}m... pick the
// cheapest safe candidate"). If none is safe, the shortest
// obstacle-clear candidate is returned with unsafe=true ("if none is
// safe the shortest is chosen and flagged").
func bestNextStation(cur, length float64, obstacles *obstacle.Map, profile *route.TerrainProfile, ctx SpanContext) (pos float64, unsafe bool, ok bool) {
	haveSafe := false
	var bestPos, bestCost float64

	haveFeasible := false
	var shortestPos float64

	for _, span := range candidateSpans {
		target := cur + span
		if target >= length {
			continue
		}
		for back := 0; back <= maxStepBacks; back++ {
			candidate := target - float64(back)*stepBackMeters
			if candidate <= cur+route.MinSpan {
				break
			}
			if obstacles != nil {
				if forbidden, _ := obstacles.IsForbidden(candidate); forbidden {
					continue
				}
			}
			if !haveFeasible || candidate-cur < shortestPos-cur {
				shortestPos = candidate
				haveFeasible = true
			}
			if !clearanceOK(cur, candidate-cur, profile, ctx.VoltageKV, ctx.Conductor) {
				continue
			}

			spanCost, safe := scoreSpan(cur, candidate-cur, profile, ctx)
			if !safe {
				continue
			}
			if !haveSafe || spanCost < bestCost {
				bestCost, bestPos, haveSafe = spanCost, candidate, true
			}
			break // this span length's step-back search is satisfied
		}
	}

	if haveSafe {
		return bestPos, false, true
	}
	if haveFeasible {
		return shortestPos, true, true
	}
	return 0, false, false
}
