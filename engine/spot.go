package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/translineopt/obstacle"
	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/spotter"
)

// safeSpotMaxShiftM is the bound spec.md §4.5/§4.6 names for the final
// safe_spot pass over the spotter's placed stations: "no safe spot
// within 100 m" is the threshold at which a violation is recorded
// instead of a silent nudge.
const safeSpotMaxShiftM = 100.0
const safeSpotStepM = 5.0

// placeStations runs the section-based auto-spotter (spec.md §4.6's
// "preferred when a code engine is available" path, which this pipeline
// always has), falling back to the simple adaptive algorithm if the
// route is too short or no feasible layout is found. Both algorithms
// score every candidate span's mid-span terrain clearance against
// profile and its C3/C4 feasibility/cost against spanCtx; a span with no
// safe candidate is flagged in the returned violations. Every
// non-endpoint station is then run through obstacle.SafeSpot once more;
// a nudge is recorded on the station and a constraint-violation string
// is recorded when no safe spot exists within safeSpotMaxShiftM.
func placeStations(rt *route.Route, obstacles *obstacle.Map, profile *route.TerrainProfile, spanCtx spotter.SpanContext, log *logrus.Entry) (distances []float64, nudges map[int]route.NudgeInfo, violations map[int][]string) {
	distances, flagged, err := spotter.SectionBased(rt, obstacles, profile, spanCtx)
	if err != nil {
		log.WithError(err).Warn("section-based spotting failed, falling back to simple adaptive")
		distances, flagged, err = spotter.Simple(rt, obstacles, profile, spanCtx)
		if err != nil {
			log.WithError(err).Warn("simple adaptive spotting also failed, using route endpoints only")
			distances = []float64{0, rt.Length()}
			flagged = []bool{false, false}
		}
	}

	nudges = map[int]route.NudgeInfo{}
	violations = map[int][]string{}
	for i, d := range distances {
		if i < len(flagged) && flagged[i] {
			violations[i] = append(violations[i], "no cost-safe span candidate found at this station: shortest feasible span used")
		}
		if obstacles == nil || i == 0 || i == len(distances)-1 {
			continue
		}
		forbidden, zone := obstacles.IsForbidden(d)
		if !forbidden {
			continue
		}
		safe, err := obstacle.SafeSpot(obstacles, d, safeSpotMaxShiftM, safeSpotStepM)
		if err != nil {
			violations[i] = append(violations[i], fmt.Sprintf("no safe spot within %.0fm of %s obstacle at %.1fm", safeSpotMaxShiftM, zone.Kind, d))
			continue
		}
		distances[i] = safe
		nudges[i] = route.NudgeInfo{
			OriginalDistance: d,
			Description:      fmt.Sprintf("shifted %.1fm to clear %s obstacle", safe-d, zone.Kind),
		}
	}

	return distances, nudges, violations
}
