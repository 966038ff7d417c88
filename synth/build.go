package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

// Build runs c against a fresh graph, then marks the sources and targets
// requested via WithSources/WithTargets by topology index, resolving each
// index to a vertex name through cfg.idFn. Grid and CompleteBipartite name
// their vertices without cfg.idFn, so an index given for them resolves to
// one of their vertices only if cfg.idFn happens to produce that name.
func Build(c Constructor, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph()

	if err := c(g, cfg); err != nil {
		return nil, err
	}

	for _, i := range cfg.sources {
		if err := g.MarkSource(cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("synth: mark source %d: %w", i, err)
		}
	}
	for _, i := range cfg.targets {
		w := cfg.targetWeightFn(cfg.rng)
		if err := g.MarkTarget(cfg.idFn(i), w); err != nil {
			return nil, fmt.Errorf("synth: mark target %d: %w", i, err)
		}
	}

	return g, nil
}

// addEdge emits one edge between the given vertex ids, drawing its weight
// from cfg.weightFn and classifying it directed or undirected per
// cfg.isDirected.
func addEdge(g *core.Graph, cfg Config, uID, vID int) error {
	w := cfg.weightFn(cfg.rng)
	if cfg.isDirected() {
		_, err := g.AddDirectedEdge(uID, vID, w)
		return err
	}
	_, err := g.AddUndirectedEdge(uID, vID, w)
	return err
}
