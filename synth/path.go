package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

const (
	methodPath  = "Path"
	minPathSize = 2
)

// Path returns a Constructor that builds a simple chain v0-v1-...-v(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < minPathSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathSize, ErrTooFewVertices)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			name := cfg.idFn(i)
			id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, name, err)
			}
			ids[i] = id
		}

		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, ids[i-1], ids[i]); err != nil {
				return fmt.Errorf("%s: edge %d-%d: %w", methodPath, i-1, i, err)
			}
		}
		return nil
	}
}
