package physics

import "errors"

// Sentinel errors returned by this package's functions.
var (
	// ErrNonPositiveTension indicates a conductor tension of 0 or less was
	// supplied to Sag, which would make the catenary undefined.
	ErrNonPositiveTension = errors.New("physics: conductor tension must be positive")

	// ErrEmptySpanSet indicates RulingSpan was called with no spans.
	ErrEmptySpanSet = errors.New("physics: ruling span requires at least one span")

	// ErrNonPositiveSpan indicates a span length of 0 or less.
	ErrNonPositiveSpan = errors.New("physics: span length must be positive")
)
