package codestd_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/codestd"
	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goodGeometry() route.TowerGeometry {
	return route.TowerGeometry{
		Type:           route.Suspension,
		TotalHeight:    30,
		BaseWidth:      route.Suspension.BaseWidthRatio() * 30 * 1.2,
		SpanLength:     340,
		FoundationType: route.PadFooting,
		FootingLength:  5,
		FootingWidth:   5,
		FootingDepth:   4,
	}
}

func baseContext() codestd.CheckContext {
	return codestd.CheckContext{
		VoltageKV:  220,
		SpanLength: 340,
		WindZone:   route.WindZone1,
		Soil:       route.SoilMedium,
	}
}

func TestResolve_KnownAndUnknown(t *testing.T) {
	for _, name := range []string{"IS", "IEC", "EUROCODE", "ASCE"} {
		std, err := codestd.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, name, std.Name())
	}
	_, err := codestd.Resolve("BS7671")
	assert.ErrorIs(t, err, codestd.ErrUnknownStandard)
}

func TestRunChecks_GoodGeometryPassesEveryStandard(t *testing.T) {
	g := goodGeometry()
	ctx := baseContext()
	for _, name := range codestd.Names() {
		std, err := codestd.Resolve(name)
		require.NoError(t, err)
		result := codestd.RunChecks(std, g, ctx)
		assert.Truef(t, result.Safe, "%s: unexpected violations: %v", name, result.Violations)
	}
}

func TestRunChecks_TooShortTowerFailsEveryStandard(t *testing.T) {
	g := goodGeometry()
	g.TotalHeight = 5
	ctx := baseContext()
	for _, name := range codestd.Names() {
		std, _ := codestd.Resolve(name)
		result := codestd.RunChecks(std, g, ctx)
		assert.False(t, result.Safe, "%s: expected height violation", name)
	}
}

func TestRunChecks_IceLoad_OnlyIECAndEurocodeEnforce(t *testing.T) {
	g := goodGeometry()
	g.FootingDepth = route.MinFootingDepth
	ctx := baseContext()
	// Rock soil keeps the soil-adjusted footing minimum below
	// MinFootingDepth in every standard, so only the ice check can fail.
	ctx.Soil = route.SoilRock
	ctx.IncludeIceLoad = true

	is, _ := codestd.Resolve("IS")
	assert.True(t, codestd.RunChecks(is, g, ctx).Safe)

	iec, _ := codestd.Resolve("IEC")
	assert.False(t, codestd.RunChecks(iec, g, ctx).Safe)

	euro, _ := codestd.Resolve("EUROCODE")
	assert.False(t, codestd.RunChecks(euro, g, ctx).Safe)
}

func TestIsClearanceViolation_TagsOnlyClearanceMessages(t *testing.T) {
	assert.True(t, codestd.IsClearanceViolation("estimated clearance 3.00m below required 6.10m"))
	assert.False(t, codestd.IsClearanceViolation("span_length 500.0m outside [250, 450]"))
}

func TestHasClearanceViolation(t *testing.T) {
	g := goodGeometry()
	g.TotalHeight = 5 // too short to clear the conductor above its sag
	ctx := baseContext()
	std, _ := codestd.Resolve("IEC")
	result := codestd.RunChecks(std, g, ctx)
	require.False(t, result.Safe)
	assert.True(t, codestd.HasClearanceViolation(result.Violations))
	assert.False(t, codestd.HasClearanceViolation(nil))
}

func TestRunChecks_ASCE_StricterBaseWidthUnderWind(t *testing.T) {
	g := goodGeometry()
	ctx := baseContext()
	ctx.WindZone = route.WindZone4

	asce, _ := codestd.Resolve("ASCE")
	result := codestd.RunChecks(asce, g, ctx)
	assert.False(t, result.Safe, "ASCE's amplified wind margin should reject a base width sized for zone 1")
}
