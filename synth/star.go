package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

const (
	methodStar  = "Star"
	minStarSize = 2
)

// Star returns a Constructor that builds a hub-and-spoke graph: the vertex
// at index 0 is the hub, connected to each of the remaining n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < minStarSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarSize, ErrTooFewVertices)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			name := cfg.idFn(i)
			id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, name, err)
			}
			ids[i] = id
		}

		hub := ids[0]
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, hub, ids[i]); err != nil {
				return fmt.Errorf("%s: edge hub-%d: %w", methodStar, i, err)
			}
		}
		return nil
	}
}
