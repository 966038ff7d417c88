package path

import "errors"

var (
	// ErrEmptyPath is returned when a path has no edges at all.
	ErrEmptyPath = errors.New("path: path has no edges")
	// ErrVertexEdgeMismatch is returned when the vertex and edge lists
	// passed to NewPath don't form a contiguous walk (len(vertices) must
	// equal len(edges)+1).
	ErrVertexEdgeMismatch = errors.New("path: vertex/edge count mismatch")
	// ErrNotSimple is returned when a vertex repeats along the path.
	ErrNotSimple = errors.New("path: vertex repeats, not a simple path")
	// ErrNotSource is returned when the first vertex is not a source.
	ErrNotSource = errors.New("path: first vertex is not a source")
	// ErrNotTarget is returned when the last vertex is not a target.
	ErrNotTarget = errors.New("path: last vertex is not a target")
	// ErrUnreachable is returned when an edge cannot legally be departed
	// from the vertex preceding it in the walk.
	ErrUnreachable = errors.New("path: edge cannot be departed from the given vertex")
	// ErrInfeasible is returned by NewPath when the walk crosses an edge
	// that is already fixed in the direction opposite to what the walk
	// requires; such a path can never be satisfied and callers (notably
	// FindPaths) discard it rather than propagating the error.
	ErrInfeasible = errors.New("path: crosses a fixed edge in the wrong direction")
	// ErrInvalidLength is returned by FindPaths for a non-positive bound.
	ErrInvalidLength = errors.New("path: max length must be >= 1")
	// ErrUnknownComparator is returned by ComparatorFor for an
	// unrecognized ranking key.
	ErrUnknownComparator = errors.New("path: unknown comparator")
)
