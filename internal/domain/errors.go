package domain

import "errors"

// Error kinds surfaced by the pipeline. All failures are fatal to the
// run; callers match with errors.Is and exit non-zero.
var (
	// ErrDataUnavailable marks a source dataset that could not be
	// fetched or decoded.
	ErrDataUnavailable = errors.New("dataset unavailable")

	// ErrInsufficientCoverage marks a rebase target period with no
	// overlap in the loaded series.
	ErrInsufficientCoverage = errors.New("insufficient coverage")

	// ErrInvalidWindow marks a smoothing window that is not a positive
	// number of years or exceeds the series length.
	ErrInvalidWindow = errors.New("invalid smoothing window")
)
