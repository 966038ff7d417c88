package wcsp

import "errors"

var (
	// ErrNoConflictEdges is returned by Generate when there are no conflict
	// edges to write a WCSP instance for.
	ErrNoConflictEdges = errors.New("wcsp: no conflict edges to generate an instance for")
	// ErrSolutionCountMismatch is returned by Score when the solution
	// line's token count does not match the expected number of variables.
	ErrSolutionCountMismatch = errors.New("wcsp: solution token count does not match conflict edge count")
	// ErrBadSolutionToken is returned when a solution line contains a token
	// other than "0" or "1".
	ErrBadSolutionToken = errors.New("wcsp: invalid solution token, expected 0 or 1")
	// ErrEmptySolution is returned when the solution reader finds no line.
	ErrEmptySolution = errors.New("wcsp: solution file is empty")
)
