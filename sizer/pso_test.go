package sizer_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/translineopt/codestd"
	"github.com/katalvlaran/translineopt/cost"
	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/sizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cheapestFitness(t *testing.T) sizer.FitnessFunc {
	std, err := codestd.Resolve("IS")
	require.NoError(t, err)
	rates := cost.Rates{SteelPerTon: 120000, ConcretePerM3: 8500, ErectionBasePerTower: 500000, LandPerM2: 150, CorridorPerKM: 200000}
	ctx := codestd.CheckContext{VoltageKV: 220, SpanLength: 340, WindZone: route.WindZone1, Soil: route.SoilMedium}

	return func(g route.TowerGeometry) (float64, bool) {
		result := codestd.RunChecks(std, g, ctx)
		total := cost.SteelCost(g, rates) + cost.FoundationCost(g, rates) + cost.ErectionCost(g, rates)
		return total, result.Safe
	}
}

func TestPSO_Run_FindsSafeDesign(t *testing.T) {
	cfg := sizer.Defaults()
	cfg.ParticleCount = 12
	cfg.Iterations = 25
	cfg.StallWindow = 10

	rng := rand.New(rand.NewSource(7))
	result, err := cfg.Run(context.Background(), route.Suspension, 220, cheapestFitness(t), rng)
	require.NoError(t, err)
	assert.False(t, result.UsedFallback)
	assert.True(t, result.Geometry.WithinHardBounds(220))
	assert.NotEmpty(t, result.ConvergenceHistory)
}

func TestPSO_Run_Errors(t *testing.T) {
	cfg := sizer.Defaults()
	rng := rand.New(rand.NewSource(1))
	_, err := cfg.Run(context.Background(), route.Suspension, 220, nil, rng)
	assert.ErrorIs(t, err, sizer.ErrNilFitness)

	_, err = cfg.Run(context.Background(), route.Suspension, 220, cheapestFitness(t), nil)
	assert.ErrorIs(t, err, sizer.ErrNilRand)
}

func TestPSO_Run_FallsBackWhenNothingIsSafe(t *testing.T) {
	cfg := sizer.Defaults()
	cfg.ParticleCount = 5
	cfg.Iterations = 5
	cfg.StallWindow = 2

	alwaysUnsafe := func(g route.TowerGeometry) (float64, bool) { return 1.0, false }
	rng := rand.New(rand.NewSource(3))
	result, err := cfg.Run(context.Background(), route.DeadEnd, 220, alwaysUnsafe, rng)
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.True(t, result.Geometry.WithinHardBounds(220))
}

func TestPSO_Run_ContextCancellation(t *testing.T) {
	cfg := sizer.Defaults()
	cfg.Iterations = 1000
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rng := rand.New(rand.NewSource(2))
	_, err := cfg.Run(ctx, route.Suspension, 220, cheapestFitness(t), rng)
	assert.ErrorIs(t, err, context.Canceled)
}
