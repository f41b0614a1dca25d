package codestd

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrUnknownStandard indicates Resolve was asked for a standard name
	// not in the registry.
	ErrUnknownStandard = errors.New("codestd: unknown standard")

	// ErrNilGeometry indicates a nil geometry. RunChecks takes its
	// geometry by value and never returns it.
	ErrNilGeometry = errors.New("codestd: geometry is nil")
)
