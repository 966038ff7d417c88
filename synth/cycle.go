package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

const (
	methodCycle  = "Cycle"
	minCycleSize = 3
)

// Cycle returns a Constructor that builds a ring v0-v1-...-v(n-1)-v0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < minCycleSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSize, ErrTooFewVertices)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			name := cfg.idFn(i)
			id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, name, err)
			}
			ids[i] = id
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err := addEdge(g, cfg, ids[i], ids[j]); err != nil {
				return fmt.Errorf("%s: edge %d-%d: %w", methodCycle, i, j, err)
			}
		}
		return nil
	}
}
