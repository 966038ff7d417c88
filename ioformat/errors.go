package ioformat

import "errors"

var (
	// ErrBadEdgeWeight is returned when an edges-file line's weight is
	// outside (0,1].
	ErrBadEdgeWeight = errors.New("ioformat: edge weight must be in (0,1]")
	// ErrBadEdgeType marks a TYPE token other than "(pp)"/"(pd)". The edges
	// grammar itself accepts only those two tokens, so ParseEdges reports
	// any other token as a parse error before this check is reached.
	ErrBadEdgeType = errors.New("ioformat: edge type must be (pp) or (pd)")
	// ErrBadTargetWeight is returned when a targets-file line's optional
	// weight is outside [0,1].
	ErrBadTargetWeight = errors.New("ioformat: target weight must be in [0,1]")
	// ErrEmptyName is returned by ParseTargets for a line whose name field
	// is empty. Blank lines in the sources and targets files are skipped,
	// not reported.
	ErrEmptyName = errors.New("ioformat: vertex name must not be empty")
)
