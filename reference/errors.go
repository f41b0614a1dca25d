package reference

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrUnknownCountry indicates a country code absent from the
	// snapshot's standards table.
	ErrUnknownCountry = errors.New("reference: unknown country code")

	// ErrInvalidSnapshot indicates a loaded snapshot failed structural
	// validation (a country mapped to a standard codestd does not know).
	ErrInvalidSnapshot = errors.New("reference: invalid snapshot")
)
