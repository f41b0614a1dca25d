package route

import "errors"

// Sentinel errors returned while building or validating route inputs.
var (
	// ErrTooFewPoints indicates a route or terrain profile has under 2 points.
	ErrTooFewPoints = errors.New("route: at least two points are required")

	// ErrNonMonotoneDistance indicates cumulative distance did not strictly increase.
	ErrNonMonotoneDistance = errors.New("route: cumulative distance must be strictly increasing")

	// ErrBadLatitude indicates a latitude outside [-90, 90].
	ErrBadLatitude = errors.New("route: latitude out of range [-90, 90]")

	// ErrBadLongitude indicates a longitude outside [-180, 180].
	ErrBadLongitude = errors.New("route: longitude out of range [-180, 180]")

	// ErrBadVoltage indicates a non-positive voltage level.
	ErrBadVoltage = errors.New("route: voltage must be positive")

	// ErrEmptyZoneInterval indicates a forbidden zone with end <= start.
	ErrEmptyZoneInterval = errors.New("route: forbidden zone end must be greater than start")
)
