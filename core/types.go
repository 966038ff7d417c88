package core

// Direction is the sense in which a path traverses an edge, relative to the
// edge's own canonical endpoint order (From→To for a DirectedEdge, A→B for
// an UndirectedEdge).
type Direction int8

const (
	// Forward means the edge is traversed in its canonical order.
	Forward Direction = iota
	// Backward means the edge is traversed against its canonical order.
	Backward
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Orientation is the mutable state of an UndirectedEdge. DirectedEdges do
// not carry an Orientation value; they are always traversable exactly one
// way by construction.
type Orientation int8

const (
	// Unoriented means the edge has not yet been assigned a direction.
	// A path using an unoriented edge is considered satisfied on it
	// (the edge has not ruled out either traversal).
	Unoriented Orientation = iota
	// OrientedForward means the edge currently points A→B but may still
	// be flipped by the orientation engine.
	OrientedForward
	// OrientedBackward means the edge currently points B→A but may
	// still be flipped.
	OrientedBackward
	// FixedForward means the edge points A→B permanently.
	FixedForward
	// FixedBackward means the edge points B→A permanently.
	FixedBackward
)

// IsFixed reports whether this orientation can never change again.
func (o Orientation) IsFixed() bool {
	return o == FixedForward || o == FixedBackward
}

// IsOriented reports whether the edge currently has a direction at all
// (oriented or fixed), as opposed to Unoriented.
func (o Orientation) IsOriented() bool {
	return o != Unoriented
}

// Direction returns the Direction this orientation currently represents.
// ok is false when the orientation is Unoriented, which has no direction.
func (o Orientation) Direction() (dir Direction, ok bool) {
	switch o {
	case OrientedForward, FixedForward:
		return Forward, true
	case OrientedBackward, FixedBackward:
		return Backward, true
	default:
		return Forward, false
	}
}

func (o Orientation) String() string {
	switch o {
	case Unoriented:
		return "unoriented"
	case OrientedForward:
		return "forward"
	case OrientedBackward:
		return "backward"
	case FixedForward:
		return "fixed-forward"
	case FixedBackward:
		return "fixed-backward"
	default:
		return "invalid"
	}
}

// EdgeKind distinguishes the two Edge variants.
type EdgeKind int8

const (
	// KindDirected marks a DirectedEdge.
	KindDirected EdgeKind = iota
	// KindUndirected marks an UndirectedEdge.
	KindUndirected
)

// PathAssoc records that the path identified by PathID wishes to traverse
// the owning edge in direction Desired. Edges accumulate these records as
// paths are constructed against them (see package path) and consult them to
// compute conflicts, edge use counts, and flip deltas.
type PathAssoc struct {
	PathID  int
	Desired Direction
}

// Edge is the capability set shared by DirectedEdge and UndirectedEdge.
// Only UndirectedEdge additionally implements MutableEdge.
type Edge interface {
	// ID returns the edge's position in its list (directed or
	// undirected) within the owning Graph; stable for the life of the
	// Graph.
	ID() int
	// Kind reports whether this is a DirectedEdge or UndirectedEdge.
	Kind() EdgeKind
	// Weight returns the edge's weight in (0,1].
	Weight() float64
	// IsFixed reports whether this edge's direction can never change.
	// Always true for DirectedEdge.
	IsFixed() bool
	// Endpoints returns the edge's two endpoint vertex ids in canonical
	// order: (From,To) for a DirectedEdge, (A,B) for an UndirectedEdge.
	Endpoints() (int, int)
	// DepartDirection reports the Direction of travel when a path
	// departs `from` along this edge, and whether that departure is
	// legal at all. A DirectedEdge only permits departure from its From
	// vertex; an UndirectedEdge permits departure from either endpoint.
	DepartDirection(from int) (dir Direction, ok bool)
	// Satisfies reports whether the edge, in its current state, allows
	// a path to traverse it in the given desired direction. Unoriented
	// and directed-in-the-matching-direction both satisfy; an
	// oriented/fixed edge pointing the other way does not.
	Satisfies(desired Direction) bool
	// IsUsed reports whether any path has ever associated itself with
	// this edge.
	IsUsed() bool
	// ConsistentUses returns the number of associated paths whose
	// desired direction matches this edge's current orientation (an
	// Unoriented edge never blocks anyone, so all of its associated
	// paths count). Used by Path to compute its cached edge-use
	// statistics after any orientation change.
	ConsistentUses() int
	// Associations returns a snapshot of the edge's path-association
	// set. The returned slice is a copy; mutating it has no effect on
	// the edge.
	Associations() []PathAssoc
	// AssociatePath registers that pathID wishes to traverse this edge
	// in direction desired. Called once by the Path constructor for
	// each edge on the path.
	AssociatePath(pathID int, desired Direction)
	// RemovePath deregisters pathID from this edge's association set.
	// Called when a path goes out of scope (path enumeration reruns).
	RemovePath(pathID int)
}

// MutableEdge is implemented only by UndirectedEdge. Engine code type-
// asserts to this interface wherever it needs to read or change an edge's
// orientation.
type MutableEdge interface {
	Edge
	// Orientation returns the edge's current orientation.
	Orientation() Orientation
	// SetOrientation assigns a non-fixed orientation (OrientedForward or
	// OrientedBackward). Returns ErrAlreadyFixed if the edge is already
	// fixed.
	SetOrientation(Orientation) error
	// Fix permanently assigns FixedForward or FixedBackward. Used by the
	// engine when converting a no-conflict edge. Returns an error if o is
	// not one of the two fixed orientations.
	Fix(Orientation) error
	// Flip reverses a currently-oriented (non-fixed, non-unoriented)
	// edge: OrientedForward<->OrientedBackward. Returns ErrAlreadyFixed
	// or ErrNotOriented if the edge cannot be flipped in its current
	// state.
	Flip() error
}
