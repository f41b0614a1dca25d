package cost

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrNegativeRate indicates a Rates field was supplied as negative.
	ErrNegativeRate = errors.New("cost: rate must be non-negative")

	// ErrEmptyTowerSet indicates TotalCost was called with no towers.
	ErrEmptyTowerSet = errors.New("cost: at least one tower is required")
)
