package physics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/translineopt/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulingSpan_Uniform(t *testing.T) {
	spans := []float64{300, 300, 300}
	rs, err := physics.RulingSpan(spans)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, rs, 1e-9)
}

func TestRulingSpan_Mixed(t *testing.T) {
	spans := []float64{250, 450}
	rs, err := physics.RulingSpan(spans)
	require.NoError(t, err)
	want := math.Sqrt((250.0*250*250 + 450*450*450) / (250.0 + 450))
	assert.InDelta(t, want, rs, 1e-9)
}

func TestRulingSpan_Errors(t *testing.T) {
	_, err := physics.RulingSpan(nil)
	assert.ErrorIs(t, err, physics.ErrEmptySpanSet)

	_, err = physics.RulingSpan([]float64{300, 0})
	assert.ErrorIs(t, err, physics.ErrNonPositiveSpan)
}

func TestStrainSections_SplitsAtAnchors(t *testing.T) {
	spans := []float64{300, 300, 300, 300}
	anchorAfter := []bool{false, true, false, false}
	sections := physics.StrainSections(spans, anchorAfter)
	require.Len(t, sections, 2)
	assert.Len(t, sections[0], 2)
	assert.Len(t, sections[1], 2)
}
