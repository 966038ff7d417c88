package synth

import "errors"

var (
	// ErrTooFewVertices indicates a topology parameter produced fewer
	// vertices than the shape requires.
	ErrTooFewVertices = errors.New("synth: too few vertices requested")

	// ErrInvalidProbability indicates an edge-inclusion probability
	// outside [0,1].
	ErrInvalidProbability = errors.New("synth: probability must be in [0,1]")

	// ErrConstructFailed indicates a stochastic topology could not be
	// realized within its bounded retry budget.
	ErrConstructFailed = errors.New("synth: failed to realize a valid graph after bounded retries")
)
