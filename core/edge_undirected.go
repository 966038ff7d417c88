package core

import "sort"

// UndirectedEdge is the edge variant whose direction the orientation engine
// assigns. Endpoints A and B define the edge's canonical order: orientation
// FORWARD means A→B, BACKWARD means B→A.
type UndirectedEdge struct {
	id          int
	a, b        int
	weight      float64
	orientation Orientation

	assoc map[int]Direction // pathID -> desired direction

	// flipCount is reset by the engine on each random re-orientation and
	// is purely diagnostic (mirrors the original Java UndirEdge's
	// resetFlipCount bookkeeping); it does not affect scoring.
	flipCount int
}

func newUndirectedEdge(id, a, b int, weight float64) *UndirectedEdge {
	return &UndirectedEdge{id: id, a: a, b: b, weight: weight, orientation: Unoriented, assoc: make(map[int]Direction)}
}

// ID implements Edge.
func (e *UndirectedEdge) ID() int { return e.id }

// Kind implements Edge.
func (e *UndirectedEdge) Kind() EdgeKind { return KindUndirected }

// Weight implements Edge.
func (e *UndirectedEdge) Weight() float64 { return e.weight }

// IsFixed implements Edge.
func (e *UndirectedEdge) IsFixed() bool { return e.orientation.IsFixed() }

// Endpoints implements Edge, returning (A, B).
func (e *UndirectedEdge) Endpoints() (int, int) { return e.a, e.b }

// Orientation implements MutableEdge.
func (e *UndirectedEdge) Orientation() Orientation { return e.orientation }

// DepartDirection implements Edge: departing from A is a Forward
// traversal, departing from B is Backward. Either is always a legal
// departure topologically; whether the current orientation *permits* it is
// a question for Satisfies, consulted by path feasibility checks.
func (e *UndirectedEdge) DepartDirection(from int) (Direction, bool) {
	switch from {
	case e.a:
		return Forward, true
	case e.b:
		return Backward, true
	default:
		return Forward, false
	}
}

// Satisfies implements Edge.
func (e *UndirectedEdge) Satisfies(desired Direction) bool {
	dir, ok := e.orientation.Direction()
	if !ok {
		return true // Unoriented: doesn't rule anything out.
	}
	return dir == desired
}

// IsUsed implements Edge.
func (e *UndirectedEdge) IsUsed() bool { return len(e.assoc) > 0 }

// ConsistentUses implements Edge.
func (e *UndirectedEdge) ConsistentUses() int {
	dir, ok := e.orientation.Direction()
	if !ok {
		return len(e.assoc) // Unoriented: nobody is blocked.
	}
	n := 0
	for _, d := range e.assoc {
		if d == dir {
			n++
		}
	}
	return n
}

// Associations implements Edge. Returned in ascending PathID order so
// summations over it (FlipDelta, in particular) add floats in the same
// order on every run.
func (e *UndirectedEdge) Associations() []PathAssoc {
	out := make([]PathAssoc, 0, len(e.assoc))
	for pid, dir := range e.assoc {
		out = append(out, PathAssoc{PathID: pid, Desired: dir})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PathID < out[j].PathID })
	return out
}

// AssociatePath implements Edge.
func (e *UndirectedEdge) AssociatePath(pathID int, desired Direction) {
	e.assoc[pathID] = desired
}

// RemovePath implements Edge.
func (e *UndirectedEdge) RemovePath(pathID int) {
	delete(e.assoc, pathID)
}

// SetOrientation implements MutableEdge.
func (e *UndirectedEdge) SetOrientation(o Orientation) error {
	if e.orientation.IsFixed() {
		return ErrAlreadyFixed
	}
	e.orientation = o
	return nil
}

// Fix implements MutableEdge.
func (e *UndirectedEdge) Fix(o Orientation) error {
	if o != FixedForward && o != FixedBackward {
		return ErrAlreadyFixed
	}
	if e.orientation.IsFixed() {
		return ErrAlreadyFixed
	}
	e.orientation = o
	return nil
}

// Flip implements MutableEdge.
func (e *UndirectedEdge) Flip() error {
	switch e.orientation {
	case OrientedForward:
		e.orientation = OrientedBackward
	case OrientedBackward:
		e.orientation = OrientedForward
	case Unoriented:
		return ErrNotOriented
	default:
		return ErrAlreadyFixed
	}
	e.flipCount++
	return nil
}

// ResetFlipCount zeroes the diagnostic flip counter. Called by the engine
// at the start of each random-orientation pass.
func (e *UndirectedEdge) ResetFlipCount() { e.flipCount = 0 }

// FlipCount returns the number of times Flip has succeeded since the last
// ResetFlipCount. Diagnostic only.
func (e *UndirectedEdge) FlipCount() int { return e.flipCount }

// ConflictCount returns the number of distinct desired directions among the
// edge's path associations that disagree with the other associations: 0 if
// all associated paths want the same direction (or there are none), 1 if
// there is a genuine conflict. An UndirectedEdge can only ever be "not in
// conflict" (all paths agree) or "in conflict" (both directions wanted);
// this returns a count rather than a bool to mirror the original
// UndirEdge.countConflicts, which engine code treats as "> 0".
func (e *UndirectedEdge) ConflictCount() int {
	sawForward, sawBackward := false, false
	for _, dir := range e.assoc {
		if dir == Forward {
			sawForward = true
		} else {
			sawBackward = true
		}
	}
	if sawForward && sawBackward {
		return 1
	}
	return 0
}
