package core

import "sort"

// DirectedEdge is a fixed From→To edge (the input format's "(pd)" /
// protein-DNA edges in the original biology application). It is always
// fixed: the orientation engine never touches it.
type DirectedEdge struct {
	id     int
	from   int
	to     int
	weight float64

	assoc map[int]Direction // pathID -> desired direction, always Forward
}

func newDirectedEdge(id, from, to int, weight float64) *DirectedEdge {
	return &DirectedEdge{id: id, from: from, to: to, weight: weight, assoc: make(map[int]Direction)}
}

// ID implements Edge.
func (e *DirectedEdge) ID() int { return e.id }

// Kind implements Edge.
func (e *DirectedEdge) Kind() EdgeKind { return KindDirected }

// Weight implements Edge.
func (e *DirectedEdge) Weight() float64 { return e.weight }

// IsFixed implements Edge; always true for a directed edge.
func (e *DirectedEdge) IsFixed() bool { return true }

// Endpoints implements Edge, returning (From, To).
func (e *DirectedEdge) Endpoints() (int, int) { return e.from, e.to }

// From returns the edge's source vertex id.
func (e *DirectedEdge) From() int { return e.from }

// To returns the edge's destination vertex id.
func (e *DirectedEdge) To() int { return e.to }

// DepartDirection implements Edge: only the From vertex may depart along a
// directed edge, and doing so is always a Forward traversal.
func (e *DirectedEdge) DepartDirection(from int) (Direction, bool) {
	if from != e.from {
		return Forward, false
	}
	return Forward, true
}

// Satisfies implements Edge. A directed edge can only ever be traversed the
// way it points, so any path using it legally already desires Forward; the
// edge always satisfies that.
func (e *DirectedEdge) Satisfies(Direction) bool { return true }

// IsUsed implements Edge.
func (e *DirectedEdge) IsUsed() bool { return len(e.assoc) > 0 }

// ConsistentUses implements Edge. A directed edge always satisfies every
// path associated with it (the only legal departure is Forward), so every
// association is consistent.
func (e *DirectedEdge) ConsistentUses() int { return len(e.assoc) }

// Associations implements Edge. Returned in ascending PathID order (see
// UndirectedEdge.Associations).
func (e *DirectedEdge) Associations() []PathAssoc {
	out := make([]PathAssoc, 0, len(e.assoc))
	for pid, dir := range e.assoc {
		out = append(out, PathAssoc{PathID: pid, Desired: dir})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PathID < out[j].PathID })
	return out
}

// AssociatePath implements Edge.
func (e *DirectedEdge) AssociatePath(pathID int, desired Direction) {
	e.assoc[pathID] = desired
}

// RemovePath implements Edge.
func (e *DirectedEdge) RemovePath(pathID int) {
	delete(e.assoc, pathID)
}
