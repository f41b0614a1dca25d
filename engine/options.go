package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/translineopt/physics"
	"github.com/katalvlaran/translineopt/reference"
	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/sizer"
)

// ObstacleSource fetches overlay-derived forbidden zones (roads,
// waterways, water bodies, wetlands) for a route from an external
// collaborator (spec.md §4.5); it is the pipeline's one suspension
// point. A nil source means the obstacle map is built from steep-slope
// detection alone.
type ObstacleSource func(ctx context.Context, r *route.Route) ([]route.ForbiddenZone, error)

// Options configures an Engine. Every field has a spec-mandated or
// sensible default; DefaultOptions returns them populated.
type Options struct {
	Logger *logrus.Logger

	ObstacleSource       ObstacleSource
	ObstacleFetchTimeout time.Duration

	// Steep-slope detection window and grade threshold, spec.md §4.5.
	SteepSlopeWindowM     float64
	SteepSlopeMaxGradePct float64

	Snapshot *reference.Snapshot

	PSO      sizer.PSO
	RandSeed int64

	Conductor physics.ConductorParams
}

// DefaultOptions returns the spec-mandated pipeline configuration: a
// 30 s obstacle-fetch timeout, the built-in regional reference
// snapshot, and sizer.Defaults()'s 30-particle/100-iteration swarm.
func DefaultOptions() Options {
	return Options{
		Logger:                defaultLogger(),
		ObstacleFetchTimeout:  30 * time.Second,
		SteepSlopeWindowM:     50.0,
		SteepSlopeMaxGradePct: 30.0,
		Snapshot:              reference.DefaultSnapshot(),
		PSO:                   sizer.Defaults(),
		RandSeed:              1,
		Conductor: physics.ConductorParams{
			WeightPerMeter: 35.0,   // N/m, typical ACSR conductor self-weight
			TensionNewtons: 30000.0, // N, typical everyday horizontal tension
		},
	}
}

func defaultLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	return log
}
