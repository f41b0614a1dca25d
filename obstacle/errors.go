package obstacle

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrNoSafeSpot indicates SafeSpot could not find a safe distance
	// within the requested maxShift.
	ErrNoSafeSpot = errors.New("obstacle: no safe spot within max shift")

	// ErrNegativeMaxShift indicates SafeSpot was called with a negative
	// search bound.
	ErrNegativeMaxShift = errors.New("obstacle: max shift must be non-negative")
)
