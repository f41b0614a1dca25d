package sizer

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrNilFitness indicates PSO.Run was called with a nil FitnessFunc.
	ErrNilFitness = errors.New("sizer: fitness function is required")

	// ErrNilRand indicates PSO.Run was called with a nil random source.
	ErrNilRand = errors.New("sizer: random source is required")
)
