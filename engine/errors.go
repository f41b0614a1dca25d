package engine

import "errors"

// Sentinel errors returned by this package's functions. Only inbound
// validation failures reach the caller as errors (spec.md §6/§7); every
// runtime failure inside the pipeline proper degrades to a conservative
// result instead of propagating.
var (
	// ErrNilRequest indicates Run was called with a nil request.
	ErrNilRequest = errors.New("engine: request is nil")
)
