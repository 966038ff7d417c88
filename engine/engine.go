package engine

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/path"
)

// Engine runs one orientation optimization over a Graph. It owns the
// current path set and conflict-edge list; re-running FindPaths discards
// and deregisters the prior set before building a new one.
type Engine struct {
	graph *core.Graph
	runID uuid.UUID
	log   *slog.Logger
	rng   *rand.Rand

	maxPathLength int

	paths         []*path.Path
	conflictEdges []*core.UndirectedEdge

	savedOrientations []core.Orientation
}

// New returns an Engine over g. g must already be fully populated (all
// vertices and edges registered, sources and targets marked); the engine
// never mutates the vertex/edge sets, only undirected-edge orientations.
func New(g *core.Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:         g,
		runID:         uuid.New(),
		maxPathLength: DefaultMaxPathLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(1, 1))
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.log = e.log.With("run_id", e.runID.String())
	return e
}

// RunID returns the log-correlation id minted for this Engine.
func (e *Engine) RunID() uuid.UUID { return e.runID }

// FindPaths (re-)enumerates every simple path up to the engine's configured
// max length, deregistering any prior path set first. Returns the number
// of paths found.
func (e *Engine) FindPaths() (int, error) {
	for _, p := range e.paths {
		p.Deregister()
	}
	e.conflictEdges = nil

	e.log.Info("finding paths", "max_depth", e.maxPathLength)
	paths, err := path.FindPaths(e.graph, e.maxPathLength)
	if err != nil {
		return 0, fmt.Errorf("engine: find paths: %w", err)
	}
	e.paths = paths
	e.log.Info("found paths", "count", len(paths))
	return len(paths), nil
}

// Paths returns the current path set, enumerating it first if necessary.
func (e *Engine) Paths() ([]*path.Path, error) {
	if e.paths == nil {
		if _, err := e.FindPaths(); err != nil {
			return nil, err
		}
	}
	return e.paths, nil
}

// SatisfiedPaths returns the subset of the current path set with nonzero
// Weight().
func (e *Engine) SatisfiedPaths() ([]*path.Path, error) {
	ps, err := e.Paths()
	if err != nil {
		return nil, err
	}
	out := make([]*path.Path, 0, len(ps))
	for _, p := range ps {
		if p.IsSatisfied() {
			out = append(out, p)
		}
	}
	return out, nil
}

// PathEdges returns every edge that appears on at least one currently
// satisfied path, keyed by the edge value itself (not by id: directed edge
// ids and undirected edge ids are separate spaces and may coincide). Used
// by the edge-output writer.
func (e *Engine) PathEdges() (map[core.Edge]struct{}, error) {
	satisfied, err := e.SatisfiedPaths()
	if err != nil {
		return nil, err
	}
	out := make(map[core.Edge]struct{})
	for _, p := range satisfied {
		for _, ed := range p.Edges() {
			out[ed] = struct{}{}
		}
	}
	return out, nil
}

// FindConflicts ensures paths have been enumerated, then walks every
// undirected edge: unused edges stay UNORIENTED, edges with unanimous
// desired direction are fixed to it, and the rest become conflict edges.
// Returns the number of conflict edges.
func (e *Engine) FindConflicts() (int, error) {
	if e.paths == nil {
		if _, err := e.FindPaths(); err != nil {
			return 0, err
		}
	}

	edges := e.graph.UndirectedEdges()
	conflicts := make([]*core.UndirectedEdge, 0, len(edges))

	usedCount, fixCount := 0, 0
	for _, ed := range edges {
		if ed.IsUsed() {
			usedCount++
		}
		switch {
		case ed.IsFixed():
			fixCount++
		case ed.ConflictCount() > 0:
			conflicts = append(conflicts, ed)
		default:
			if fixNoConflict(ed) {
				fixCount++
			}
		}
	}

	e.conflictEdges = conflicts
	e.log.Info("fixed non-conflict edges",
		"used", usedCount, "total", len(edges), "fixed", fixCount, "conflicts", len(conflicts))
	return len(conflicts), nil
}

// fixNoConflict fixes ed to its associated paths' unanimous desired
// direction and reports whether it did (false if ed is unused, in which
// case it is left UNORIENTED).
func fixNoConflict(ed *core.UndirectedEdge) bool {
	assocs := ed.Associations()
	if len(assocs) == 0 {
		return false
	}
	dir := assocs[0].Desired
	var target core.Orientation
	if dir == core.Forward {
		target = core.FixedForward
	} else {
		target = core.FixedBackward
	}
	_ = ed.Fix(target) // ConflictCount()==0 here guarantees this never errors
	return true
}

// ConflictEdges returns the current conflict-edge list, running
// FindConflicts first if necessary.
func (e *Engine) ConflictEdges() ([]*core.UndirectedEdge, error) {
	if e.conflictEdges == nil {
		if _, err := e.FindConflicts(); err != nil {
			return nil, err
		}
	}
	return e.conflictEdges, nil
}

func (e *Engine) conflictEdgesOriented() bool {
	for _, ed := range e.conflictEdges {
		if !ed.Orientation().IsOriented() {
			return false
		}
	}
	return true
}

// GlobalScore returns the sum of Weight() over every enumerated path.
func (e *Engine) GlobalScore() (float64, error) {
	ps, err := e.Paths()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range ps {
		total += p.Weight()
	}
	return total, nil
}

// MaxGlobalScore returns the sum of MaxWeight() over every enumerated path:
// the (generally unattainable) upper bound on GlobalScore.
func (e *Engine) MaxGlobalScore() (float64, error) {
	ps, err := e.Paths()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range ps {
		total += p.MaxWeight()
	}
	return total, nil
}

// invalidate clears the graph's degree cache and refreshes every path's
// edge-use statistics. Must be called after any bulk change to edge
// orientations (random init, local-search termination, WCSP scoring,
// save/load).
func (e *Engine) invalidate() {
	e.graph.ClearDegreeCache()
	for _, p := range e.paths {
		p.UpdateEdgeUses()
	}
}
