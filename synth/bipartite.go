package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph
// K_{n1,n2}: left-partition names "<leftPrefix><i>", right-partition names
// "<rightPrefix><j>", every cross pair connected.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]int, n1)
		for i := 0; i < n1; i++ {
			name := fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, name, err)
			}
			left[i] = id
		}

		right := make([]int, n2)
		for j := 0; j < n2; j++ {
			name := fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, name, err)
			}
			right[j] = id
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, cfg, left[i], right[j]); err != nil {
					return fmt.Errorf("%s: edge %s%d-%s%d: %w",
						methodCompleteBipartite, cfg.leftPrefix, i, cfg.rightPrefix, j, err)
				}
			}
		}
		return nil
	}
}
