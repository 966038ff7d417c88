package path

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

// Path is a simple, bounded-length walk from a source vertex to a target
// vertex. Its weight statistics (maxWeight and the edge-weight/vertex-degree
// extremes) are fixed at construction; its edge-use statistics are
// recomputed on demand by UpdateEdgeUses whenever an edge's orientation may
// have changed.
type Path struct {
	id       int
	graph    *core.Graph
	vertices []int
	edges    []core.Edge
	desired  []core.Direction

	maxWeight float64

	maxEdgeWeight, minEdgeWeight, avgEdgeWeight float64
	maxDegree, minDegree                        int
	avgDegree                                   float64

	maxEdgeUse, minEdgeUse int
	avgEdgeUse             float64
}

// NewPath builds a Path from a walk given as a vertex-id sequence and the
// edge crossed between each consecutive pair. It validates the walk is a
// contiguous simple path from a source to a target, computes the desired
// traversal direction for each edge, registers the path with every edge
// (core.Edge.AssociatePath), and caches the path's weight and degree
// statistics.
//
// Returns ErrInfeasible, without registering anything, if the walk crosses
// an edge already fixed in the wrong direction — callers enumerating paths
// should treat that as "discard this path", not a hard failure.
func NewPath(g *core.Graph, id int, vertices []int, edges []core.Edge) (*Path, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyPath
	}
	if len(vertices) != len(edges)+1 {
		return nil, ErrVertexEdgeMismatch
	}

	seen := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		if seen[v] {
			return nil, ErrNotSimple
		}
		seen[v] = true
	}
	if !g.Vertex(vertices[0]).IsSource() {
		return nil, ErrNotSource
	}
	last := vertices[len(vertices)-1]
	if !g.Vertex(last).IsTarget() {
		return nil, ErrNotTarget
	}

	desired := make([]core.Direction, len(edges))
	for i, e := range edges {
		dir, ok := e.DepartDirection(vertices[i])
		if !ok {
			return nil, fmt.Errorf("%w: edge %d from vertex %d", ErrUnreachable, e.ID(), vertices[i])
		}
		from, to := e.Endpoints()
		other := from
		if vertices[i] == from {
			other = to
		}
		if other != vertices[i+1] {
			return nil, fmt.Errorf("%w: edge %d does not connect vertex %d to vertex %d", ErrUnreachable, e.ID(), vertices[i], vertices[i+1])
		}
		if e.IsFixed() && !e.Satisfies(dir) {
			return nil, ErrInfeasible
		}
		desired[i] = dir
	}

	p := &Path{
		id:       id,
		graph:    g,
		vertices: vertices,
		edges:    edges,
		desired:  desired,
	}
	p.cacheWeightStats()
	p.cacheDegreeStats()

	for i, e := range edges {
		e.AssociatePath(id, desired[i])
	}
	p.UpdateEdgeUses()

	return p, nil
}

func (p *Path) cacheWeightStats() {
	p.maxWeight = 1.0
	for _, v := range p.vertices {
		p.maxWeight *= p.graph.Vertex(v).Weight()
	}
	p.maxWeight *= p.graph.Vertex(p.vertices[len(p.vertices)-1]).TargetWeight()

	p.minEdgeWeight = p.edges[0].Weight()
	p.maxEdgeWeight = p.edges[0].Weight()
	sum := 0.0
	for _, e := range p.edges {
		w := e.Weight()
		p.maxWeight *= w
		if w < p.minEdgeWeight {
			p.minEdgeWeight = w
		}
		if w > p.maxEdgeWeight {
			p.maxEdgeWeight = w
		}
		sum += w
	}
	p.avgEdgeWeight = sum / float64(len(p.edges))
}

func (p *Path) cacheDegreeStats() {
	p.minDegree = p.graph.Degree(p.vertices[0], false, false)
	p.maxDegree = p.minDegree
	sum := 0
	for _, v := range p.vertices {
		d := p.graph.Degree(v, false, false)
		if d < p.minDegree {
			p.minDegree = d
		}
		if d > p.maxDegree {
			p.maxDegree = d
		}
		sum += d
	}
	p.avgDegree = float64(sum) / float64(len(p.vertices))
}

// UpdateEdgeUses recomputes the path's edge-use statistics (the number of
// currently-consistent path associations on each of its edges). Callers
// must invoke this after any change to the orientation of an edge on the
// path; it is called once automatically by NewPath.
func (p *Path) UpdateEdgeUses() {
	p.minEdgeUse = p.edges[0].ConsistentUses()
	p.maxEdgeUse = p.minEdgeUse
	sum := 0
	for _, e := range p.edges {
		u := e.ConsistentUses()
		if u < p.minEdgeUse {
			p.minEdgeUse = u
		}
		if u > p.maxEdgeUse {
			p.maxEdgeUse = u
		}
		sum += u
	}
	p.avgEdgeUse = float64(sum) / float64(len(p.edges))
}

// Deregister removes this path's association from every edge it crosses.
// Called when a path goes out of scope, e.g. before a fresh call to
// FindPaths discards the prior path set.
func (p *Path) Deregister() {
	for _, e := range p.edges {
		e.RemovePath(p.id)
	}
}

// ID returns the path's stable integer id, used as the key in every edge's
// path-association set.
func (p *Path) ID() int { return p.id }

// Vertices returns the path's vertex-id sequence, v0 (source) to vl (target).
func (p *Path) Vertices() []int {
	out := make([]int, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Edges returns the path's edge sequence, in traversal order.
func (p *Path) Edges() []core.Edge {
	out := make([]core.Edge, len(p.edges))
	copy(out, p.edges)
	return out
}

// Len returns the number of edges on the path.
func (p *Path) Len() int { return len(p.edges) }

// Desired returns the direction this path wishes to traverse edges[i].
func (p *Path) Desired(i int) core.Direction { return p.desired[i] }

// MaxWeight returns the path's weight if every edge is satisfied: the
// product of all vertex node-weights, the target's target-weight, and all
// edge weights. Fixed at construction.
func (p *Path) MaxWeight() float64 { return p.maxWeight }

// Weight returns the path's weight under the current orientation of its
// edges: MaxWeight() if every edge currently satisfies this path's desired
// direction, 0 otherwise.
func (p *Path) Weight() float64 {
	for i, e := range p.edges {
		if !e.Satisfies(p.desired[i]) {
			return 0
		}
	}
	return p.maxWeight
}

// IsSatisfied reports whether Weight() is currently nonzero.
func (p *Path) IsSatisfied() bool { return p.Weight() > 0 }

// WeightIfEdgeFlipped returns this path's weight as if target's orientation
// were reversed, leaving every other edge's orientation unchanged. target
// need not be on this path, in which case the result equals Weight(). Used
// by the orientation engine to compute a conflict edge's flip delta without
// mutating any state.
func (p *Path) WeightIfEdgeFlipped(target *core.UndirectedEdge) float64 {
	for i, e := range p.edges {
		satisfied := e.Satisfies(p.desired[i])
		if ue, ok := e.(*core.UndirectedEdge); ok && ue == target {
			if dir, hasDir := ue.Orientation().Direction(); hasDir {
				satisfied = p.desired[i] == dir.Opposite()
			} else {
				satisfied = true
			}
		}
		if !satisfied {
			return 0
		}
	}
	return p.maxWeight
}

// HasConflictEdge reports whether any edge on the path has associations
// wanting it in both directions (an engine.conflictEdges candidate).
func (p *Path) HasConflictEdge() bool {
	for _, e := range p.edges {
		if ue, ok := e.(*core.UndirectedEdge); ok && ue.ConflictCount() > 0 {
			return true
		}
	}
	return false
}

// MaxEdgeWeight returns the maximum edge weight along the path.
func (p *Path) MaxEdgeWeight() float64 { return p.maxEdgeWeight }

// MinEdgeWeight returns the minimum edge weight along the path.
func (p *Path) MinEdgeWeight() float64 { return p.minEdgeWeight }

// AvgEdgeWeight returns the mean edge weight along the path.
func (p *Path) AvgEdgeWeight() float64 { return p.avgEdgeWeight }

// MaxDegree returns the maximum vertex degree along the path.
func (p *Path) MaxDegree() int { return p.maxDegree }

// MinDegree returns the minimum vertex degree along the path.
func (p *Path) MinDegree() int { return p.minDegree }

// AvgDegree returns the mean vertex degree along the path.
func (p *Path) AvgDegree() float64 { return p.avgDegree }

// MaxEdgeUse returns the maximum, over the path's edges, of the number of
// paths currently consistent with that edge's orientation.
func (p *Path) MaxEdgeUse() int { return p.maxEdgeUse }

// MinEdgeUse returns the corresponding minimum.
func (p *Path) MinEdgeUse() int { return p.minEdgeUse }

// AvgEdgeUse returns the corresponding mean.
func (p *Path) AvgEdgeUse() float64 { return p.avgEdgeUse }

// VertexNames resolves the path's vertex sequence to names, colon-joined as
// the path.output.file format requires.
func (p *Path) VertexNames() []string {
	out := make([]string, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = p.graph.Vertex(v).Name()
	}
	return out
}
