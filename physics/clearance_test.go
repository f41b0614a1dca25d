package physics_test

import (
	"testing"

	"github.com/katalvlaran/translineopt/physics"
	"github.com/stretchr/testify/assert"
)

func TestRequiredClearance_Brackets(t *testing.T) {
	assert.Equal(t, 6.1, physics.RequiredClearance(132, 100))
	assert.Equal(t, 6.4, physics.RequiredClearance(132, 400))
	assert.Equal(t, 7.0, physics.RequiredClearance(220, 100))
	assert.Equal(t, 9.1, physics.RequiredClearance(400, 400))
	assert.Equal(t, 12.8, physics.RequiredClearance(765, 400))
}

func TestRequiredClearance_BelowFloor(t *testing.T) {
	assert.Equal(t, 6.1, physics.RequiredClearance(66, 100))
}
