package towertype_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/towertype"
	"github.com/stretchr/testify/assert"
)

func TestDeviationAngle_StraightLine(t *testing.T) {
	d := towertype.DeviationAngle(27.70, 85.30, 27.71, 85.30, 27.72, 85.30)
	assert.InDelta(t, 0.0, d, 1e-6)
}

func TestDeviationAngle_RightAngleBend(t *testing.T) {
	// North then east: a 90-degree bend.
	d := towertype.DeviationAngle(27.69, 85.30, 27.70, 85.30, 27.70, 85.31)
	assert.InDelta(t, 90.0, d, 1.0)
}

func TestClassify_Precedence(t *testing.T) {
	assert.Equal(t, route.DeadEnd, towertype.Classify(0, true, true))
	assert.Equal(t, route.Tension, towertype.Classify(0, false, true))
	assert.Equal(t, route.Suspension, towertype.Classify(1, false, false))
	assert.Equal(t, route.Angle, towertype.Classify(15, false, false))
	assert.Equal(t, route.Tension, towertype.Classify(45, false, false))
}

func TestClassify_Boundaries(t *testing.T) {
	assert.Equal(t, route.Angle, towertype.Classify(towertype.SuspensionMaxDeg, false, false))
	assert.Equal(t, route.Tension, towertype.Classify(towertype.AngleMaxDeg, false, false))
}
