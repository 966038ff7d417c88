package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdos-Renyi-style
// graph over n vertices, including each unordered pair {i,j}, i<j,
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			name := cfg.idFn(i)
			id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, name, err)
			}
			ids[i] = id
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() > p {
					continue
				}
				if err := addEdge(g, cfg, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: edge %d-%d: %w", methodRandomSparse, i, j, err)
				}
			}
		}
		return nil
	}
}
