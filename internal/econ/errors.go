package econ

import "errors"

// Error kinds shared by every model family. Callers wrap these with
// fmt.Errorf("...: %w", ...) so the API layer can map them to stable
// error codes with errors.Is.
var (
	// ErrInvalidDomain marks numeric inputs outside the model's valid
	// domain (non-positive demand slope, gamma outside [0,1], ...).
	ErrInvalidDomain = errors.New("parameter outside valid domain")

	// ErrNoBidders marks an empty or all-invalid bidder valuation set.
	ErrNoBidders = errors.New("empty bidder set")

	// ErrMalformedMatrix marks a non-square or ragged payoff matrix.
	ErrMalformedMatrix = errors.New("malformed payoff matrix")
)
