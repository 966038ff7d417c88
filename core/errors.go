package core

import "errors"

// Sentinel errors returned by Graph mutation and lookup methods.
var (
	// ErrEmptyName indicates a vertex was registered with an empty name.
	ErrEmptyName = errors.New("core: vertex name is empty")

	// ErrReservedName indicates a vertex name contains the reserved
	// underscore character.
	ErrReservedName = errors.New("core: vertex name contains reserved character '_'")

	// ErrVertexNotFound indicates an operation referenced a vertex name
	// that has not been registered.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight outside the required (0,1] range.
	ErrBadWeight = errors.New("core: weight must be in (0,1]")

	// ErrBadNodeWeight indicates a node or target weight outside [0,1].
	ErrBadNodeWeight = errors.New("core: node weight must be in [0,1]")

	// ErrSelfLoop indicates an edge whose two endpoints are the same
	// vertex; the MEO model has no use for self-loops.
	ErrSelfLoop = errors.New("core: self-loop edges are not supported")

	// ErrEdgeNotFound indicates an operation referenced an edge id that
	// does not exist in the graph it was looked up in.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrAlreadyFixed indicates an attempt to mutate the orientation of
	// an edge whose orientation is already FIXED-FORWARD or
	// FIXED-BACKWARD.
	ErrAlreadyFixed = errors.New("core: edge orientation is already fixed")

	// ErrNotOriented indicates Flip was called on an edge that has never
	// been given a FORWARD/BACKWARD orientation.
	ErrNotOriented = errors.New("core: edge has not been oriented")
)
