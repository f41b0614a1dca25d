package spotter

import (
	"math"

	"github.com/katalvlaran/translineopt/obstacle"
	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/towertype"
)

// Section-based placement constants (spec.md C6):
// slackWindowLowM/slackWindowHighM bound the terminal span the
// first/last section reserves before distributing the remainder evenly
// across the rest of that section ("smart slack"), cornerMergeM/
// cornerAngleDeg drive corner detection, and jitterMaxShiftM/jitterStepM
// bound the final obstacle-avoidance nudge. maxClearanceSubdivisions
// bounds how many times one span is halved chasing a mid-span terrain
// clearance failure before the algorithm accepts it as-is and flags the
// span's end station unsafe.
const (
	slackWindowLowM          = 150.0
	slackWindowHighM         = 200.0
	cornerMergeM             = route.MinSpan
	cornerAngleDeg           = towertype.AngleMaxDeg
	jitterMaxShiftM          = 60.0
	jitterStepM              = 5.0
	maxClearanceSubdivisions = 3
)

// SectionBased places stations along r in four phases (spec.md C6):
// corner merge, section definition, span optimization with smart slack,
// and precise placement with jitter against obstacles. Between span
// optimisation and jitter, every resulting span is checked for mid-span
// terrain clearance against profile and subdivided when a single tower
// pair cannot clear it within route.MaxTowerHeight (spec.md §4.6:
// "consult physics.MidSpanClearance against the terrain profile during
// placement and subdivide").
//
// unsafe[i] reports whether stations[i]'s incoming span still fails
// clearance after maxClearanceSubdivisions subdivision attempts (always
// false for the route's first station).
//
// Complexity: O(n) over the route's points plus O(m) over the resulting
// stations for the clearance and jitter passes.
func SectionBased(r *route.Route, obstacles *obstacle.Map, profile *route.TerrainProfile, ctx SpanContext) (stations []float64, unsafe []bool, err error) {
	if r == nil {
		return nil, nil, ErrNilRoute
	}
	length := r.Length()
	if length < route.MinSpanLength {
		return nil, nil, ErrRouteTooShort
	}

	corners := mergeCorners(detectCorners(r), cornerMergeM)
	sections := defineSections(corners, length)

	stations = []float64{0}
	for i, sec := range sections {
		terminal := i == 0 || i == len(sections)-1
		if terminal {
			stations = append(stations, terminalSplit(sec[0], sec[1], i == 0)...)
		} else {
			stations = append(stations, interiorSplit(sec[0], sec[1])...)
		}
	}

	stations, unsafe = enforceMidSpanClearance(stations, profile, ctx)
	return jitterPlacement(stations, obstacles), unsafe, nil
}

// spanCount returns the number of spans a strain section of
// sectionLength should be divided into (spec.md §4.6(b): "minimise
// tower count: N = ceil(L/max_span); reduce N by one if that leaves
// L/N >= min_span").
func spanCount(sectionLength float64) int {
	n := int(math.Ceil(sectionLength / route.MaxSpanLength))
	if n < 1 {
		n = 1
	}
	if n > 1 {
		if reduced := n - 1; sectionLength/float64(reduced) >= route.MinSpanLength {
			n = reduced
		}
	}
	return n
}

// interiorSplit divides an interior strain section into spanCount evenly
// spaced spans.
func interiorSplit(start, end float64) []float64 {
	n := spanCount(end - start)
	evenSpan := (end - start) / float64(n)
	stations := make([]float64, n)
	for i := 1; i <= n; i++ {
		stations[i-1] = start + float64(i)*evenSpan
	}
	stations[n-1] = end
	return stations
}

// terminalSplit divides the first or last strain section using the
// "smart slack" variant (spec.md §4.6(b).3): reserve a terminal span in
// [slackWindowLowM, slackWindowHighM] and distribute the remainder
// evenly across the other spanCount-1 spans, provided the resulting
// inner span lands within [MinSpanLength, MaxSpanLength]; otherwise fall
// back to the plain even split. reserveAtStart places the short
// reserved span first (the route's first section); the last section
// places it last.
func terminalSplit(start, end float64, reserveAtStart bool) []float64 {
	sectionLength := end - start
	n := spanCount(sectionLength)
	if n > 1 {
		for _, reserve := range []float64{slackWindowLowM, slackWindowHighM} {
			inner := (sectionLength - reserve) / float64(n-1)
			if inner < route.MinSpanLength || inner > route.MaxSpanLength {
				continue
			}
			stations := make([]float64, n)
			if reserveAtStart {
				stations[0] = start + reserve
				for i := 1; i < n; i++ {
					stations[i] = stations[i-1] + inner
				}
			} else {
				for i := 0; i < n-1; i++ {
					stations[i] = start + float64(i+1)*inner
				}
				stations[n-2] = end - reserve
			}
			stations[n-1] = end
			return stations
		}
	}
	return interiorSplit(start, end)
}

// enforceMidSpanClearance walks consecutive stations and, where
// clearanceOK fails against profile, inserts a midpoint to halve the
// offending span (shorter span, less sag, better clearance), retrying up
// to maxClearanceSubdivisions times per span before giving up and
// flagging the span's end station unsafe.
func enforceMidSpanClearance(stations []float64, profile *route.TerrainProfile, ctx SpanContext) ([]float64, []bool) {
	if profile == nil || len(stations) < 2 {
		return stations, make([]bool, len(stations))
	}

	out := []float64{stations[0]}
	unsafe := []bool{false}
	for i := 1; i < len(stations); i++ {
		start, end := stations[i-1], stations[i]
		flagged := false
		for attempt := 0; !clearanceOK(start, end-start, profile, ctx.VoltageKV, ctx.Conductor); attempt++ {
			mid := (start + end) / 2
			if attempt >= maxClearanceSubdivisions || mid-start < route.MinSpan {
				flagged = true
				break
			}
			out = append(out, mid)
			unsafe = append(unsafe, false)
			start = mid
		}
		out = append(out, end)
		unsafe = append(unsafe, flagged)
	}
	return out, unsafe
}

// detectCorners scans r's own vertices (not a resampled polyline) for
// points whose deviation angle exceeds cornerAngleDeg, the same
// threshold towertype.Classify uses to promote a station from Angle to
// Tension — section boundaries are exactly the points this system must
// build an anchor tower at regardless of span economics.
func detectCorners(r *route.Route) []float64 {
	points := r.Points()
	if len(points) < 3 {
		return nil
	}
	var corners []float64
	for i := 1; i < len(points)-1; i++ {
		a, b, c := points[i-1], points[i], points[i+1]
		if a.Lat == nil || a.Lon == nil || b.Lat == nil || b.Lon == nil || c.Lat == nil || c.Lon == nil {
			continue
		}
		angle := towertype.DeviationAngle(*a.Lat, *a.Lon, *b.Lat, *b.Lon, *c.Lat, *c.Lon)
		if angle > cornerAngleDeg {
			corners = append(corners, b.Distance)
		}
	}
	return corners
}

// mergeCorners collapses corners closer together than mergeDistance into
// a single representative point, the way obstacle.Map merges overlapping
// same-kind zones: two bends too close together cannot both carry a
// full-size anchor tower with a legal span between them.
func mergeCorners(corners []float64, mergeDistance float64) []float64 {
	if len(corners) == 0 {
		return nil
	}
	merged := []float64{corners[0]}
	for _, c := range corners[1:] {
		if c-merged[len(merged)-1] < mergeDistance {
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

// defineSections splits [0, length] at every corner into consecutive
// [start, end] strain sections.
func defineSections(corners []float64, length float64) [][2]float64 {
	bounds := append([]float64{0}, corners...)
	bounds = append(bounds, length)

	sections := make([][2]float64, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		if bounds[i+1]-bounds[i] <= 0 {
			continue
		}
		sections = append(sections, [2]float64{bounds[i], bounds[i+1]})
	}
	return sections
}

// jitterPlacement nudges every non-endpoint station off an obstacle
// within jitterMaxShiftM, the "precise placement" phase (spec.md C6).
// The first and last stations (the route's fixed physical ends) are
// never nudged. This is silent, internal cleanup only: it has no
// NudgeInfo/violation reporting surface of its own. The engine runs a
// second, wider SafeSpot pass over whatever SectionBased returns here
// and is what actually records nudges and unresolvable-obstacle
// violations on the result (see engine's placeStations).
func jitterPlacement(stations []float64, obstacles *obstacle.Map) []float64 {
	if obstacles == nil || len(stations) < 3 {
		return stations
	}
	out := make([]float64, len(stations))
	out[0] = stations[0]
	out[len(stations)-1] = stations[len(stations)-1]
	for i := 1; i < len(stations)-1; i++ {
		if safe, err := obstacle.SafeSpot(obstacles, stations[i], jitterMaxShiftM, jitterStepM); err == nil {
			out[i] = safe
		} else {
			out[i] = stations[i]
		}
	}
	return out
}
