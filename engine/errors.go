package engine

import "errors"

var (
	// ErrConflictsNotFound is returned by operations that require
	// FindConflicts to have run first (saving or writing conflict
	// orientations) when it has not.
	ErrConflictsNotFound = errors.New("engine: conflict edges have not been identified yet")
	// ErrNoSavedOrientations is returned by LoadConflictOrientations when
	// SaveConflictOrientations has never been called.
	ErrNoSavedOrientations = errors.New("engine: no orientation has been saved")
	// ErrOrientationCountMismatch is returned when a supplied orientation
	// vector's length does not equal the number of conflict edges.
	ErrOrientationCountMismatch = errors.New("engine: orientation count does not match conflict edge count")
	// ErrBadOrientationToken is returned when a serialized orientation
	// vector contains a value outside the expected range.
	ErrBadOrientationToken = errors.New("engine: invalid orientation token")
)
