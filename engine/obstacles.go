package engine

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/translineopt/obstacle"
	"github.com/katalvlaran/translineopt/route"
)

// buildObstacleMap assembles the obstacle map from steep-slope detection
// (always run, never blocks) plus an optional external overlay fetch
// bounded by e.opts.ObstacleFetchTimeout (spec.md §4.5, §5). On timeout
// or fetch error it degrades to steep-slope-only and reports degraded=true
// so the caller can dock confidence.
func (e *Engine) buildObstacleMap(ctx context.Context, rt *route.Route, terrain *route.TerrainProfile, log *logrus.Entry) (*obstacle.Map, bool) {
	steepZones := obstacle.DetectSteepSlope(terrain, e.opts.SteepSlopeWindowM, e.opts.SteepSlopeMaxGradePct)

	if e.opts.ObstacleSource == nil {
		return steepSlopeOnlyMap(steepZones, log), false
	}

	fetchCtx, cancel := context.WithTimeout(ctx, e.opts.ObstacleFetchTimeout)
	defer cancel()

	external, err := e.opts.ObstacleSource(fetchCtx, rt)
	if err != nil {
		log.WithError(err).Warn("obstacle overlay fetch degraded, falling back to steep-slope only")
		return steepSlopeOnlyMap(steepZones, log), true
	}

	all := append(append([]route.ForbiddenZone{}, steepZones...), external...)
	m, err := obstacle.NewMap(all)
	if err != nil {
		log.WithError(err).Warn("obstacle map build failed after overlay fetch, falling back to steep-slope only")
		return steepSlopeOnlyMap(steepZones, log), true
	}
	return m, false
}

// steepSlopeOnlyMap builds the degraded-mode obstacle map; the only way
// this itself can fail is a malformed steep-slope zone, which falls back
// to an empty map rather than propagating (spec.md §7's "never throw
// across a component boundary").
func steepSlopeOnlyMap(steepZones []route.ForbiddenZone, log *logrus.Entry) *obstacle.Map {
	m, err := obstacle.NewMap(steepZones)
	if err != nil {
		log.WithError(err).Warn("steep-slope zones failed validation, obstacle map is empty")
		m, _ = obstacle.NewMap(nil)
	}
	return m
}
