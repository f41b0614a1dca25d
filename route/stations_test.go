package route_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStations(distances ...float64) []route.TowerStation {
	out := make([]route.TowerStation, len(distances))
	for i, d := range distances {
		out[i] = route.TowerStation{Index: i, Distance: d, Type: route.Suspension}
	}
	return out
}

func TestValidateSequence_OK(t *testing.T) {
	stations := buildStations(0, 350, 700, 1000)
	require.NoError(t, route.ValidateSequence(stations, 1010))
}

func TestValidateSequence_TooFew(t *testing.T) {
	assert.ErrorIs(t, route.ValidateSequence(buildStations(0), 100), route.ErrTooFewPoints)
}

func TestValidateSequence_FirstNotZero(t *testing.T) {
	err := route.ValidateSequence(buildStations(10, 400), 400)
	assert.Error(t, err)
}

func TestValidateSequence_LastTooFarFromEnd(t *testing.T) {
	err := route.ValidateSequence(buildStations(0, 400), 1000)
	assert.Error(t, err)
}

func TestValidateSequence_NonIncreasingOrTooClose(t *testing.T) {
	err := route.ValidateSequence(buildStations(0, 0), 0)
	assert.Error(t, err)

	err = route.ValidateSequence(buildStations(0, 10), 10)
	assert.Error(t, err, "gap below MinSpan must be rejected")
}
