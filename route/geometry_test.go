package route_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
)

func TestVoltageMinHeight(t *testing.T) {
	cases := []struct {
		kv   float64
		want float64
	}{
		{100, 15.0},
		{132, 15.0},
		{220, 18.0},
		{400, 25.0},
		{765, 50.0},
		{1000, 55.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, route.VoltageMinHeight(tc.kv))
	}
}

func TestTowerType_IsAnchorAndRatio(t *testing.T) {
	assert.True(t, route.DeadEnd.IsAnchor())
	assert.True(t, route.Tension.IsAnchor())
	assert.False(t, route.Suspension.IsAnchor())
	assert.False(t, route.Angle.IsAnchor())

	assert.Equal(t, 0.25, route.Suspension.BaseWidthRatio())
	assert.Equal(t, 0.35, route.DeadEnd.BaseWidthRatio())
}

func TestTowerGeometry_WithinHardBounds(t *testing.T) {
	g := route.TowerGeometry{
		Type:           route.Suspension,
		TotalHeight:    20,
		BaseWidth:      6,
		SpanLength:     300,
		FoundationType: route.PadFooting,
		FootingLength:  4,
		FootingWidth:   4,
		FootingDepth:   3,
	}
	assert.True(t, g.WithinHardBounds(220))

	tooShort := g
	tooShort.TotalHeight = 5
	assert.False(t, tooShort.WithinHardBounds(220))

	badBase := g
	badBase.BaseWidth = 0.1
	assert.False(t, badBase.WithinHardBounds(220))
}

func TestTowerGeometry_Clamp(t *testing.T) {
	g := route.TowerGeometry{
		Type:        route.Suspension,
		TotalHeight: 1000,
		BaseWidth:   1000,
		SpanLength:  10,
	}
	out := g.Clamp(220)
	assert.Equal(t, route.MaxTowerHeight, out.TotalHeight)
	assert.Equal(t, route.MinSpanLength, out.SpanLength)
	assert.Equal(t, route.PadFooting, out.FoundationType)
	assert.True(t, out.WithinHardBounds(220))
}

func TestConservativeFallback_SatisfiesBounds(t *testing.T) {
	g := route.ConservativeFallback(route.DeadEnd, 400)
	assert.True(t, g.WithinHardBounds(400))
	assert.GreaterOrEqual(t, g.FootingDepth, 4.0)
	assert.GreaterOrEqual(t, g.BaseWidth, 0.3*g.TotalHeight)
}

func TestConservativeFallback_FloorsBaseWidthAt0_30ForLowRatioTypes(t *testing.T) {
	for _, ty := range []route.TowerType{route.Suspension, route.Angle, route.Tension, route.DeadEnd} {
		g := route.ConservativeFallback(ty, 220)
		assert.GreaterOrEqual(t, g.BaseWidth, 0.30*g.TotalHeight, "tower type %s", ty)
	}
}
