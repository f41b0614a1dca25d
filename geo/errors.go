package geo

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrEmptyProfile indicates a terrain profile or route with no points.
	ErrEmptyProfile = errors.New("geo: profile has no points")

	// ErrDistanceOutOfRange indicates a query distance outside the
	// profile's [0, length] span.
	ErrDistanceOutOfRange = errors.New("geo: distance outside profile range")

	// ErrNonPositiveStep indicates WalkPolylineByDistance was asked to
	// step by a non-positive interval.
	ErrNonPositiveStep = errors.New("geo: step must be positive")

	// ErrMissingCoordinates indicates a route point lacks a GPS fix where
	// one was required for interpolation.
	ErrMissingCoordinates = errors.New("geo: route point has no lat/lon")
)
