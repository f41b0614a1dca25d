package spotter

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrNoFeasibleSpan indicates Simple stepped back to the minimum
	// allowed span and still could not clear every candidate's obstacle
	// check.
	ErrNoFeasibleSpan = errors.New("spotter: no feasible span found within step-back budget")

	// ErrRouteTooShort indicates the route cannot hold even the two
	// mandatory endpoint stations with a single legal span between them.
	ErrRouteTooShort = errors.New("spotter: route too short for minimum span")

	// ErrNilRoute indicates a nil *route.Route was passed.
	ErrNilRoute = errors.New("spotter: route is nil")
)
