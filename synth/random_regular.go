package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 1000
)

// RandomRegular returns a Constructor that builds an undirected d-regular
// simple graph via stub-matching with bounded reshuffle retries. Edges
// here are always undirected regardless of Config's directed fraction:
// stub-matching only guarantees a d-regular degree sequence for simple
// undirected pairings.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			name := cfg.idFn(i)
			id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomRegular, name, err)
			}
			ids[i] = id
		}

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			valid := true
			seen := make(map[[2]int]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				w := cfg.weightFn(cfg.rng)
				if _, err := g.AddUndirectedEdge(ids[stubs[i]], ids[stubs[i+1]], w); err != nil {
					return fmt.Errorf("%s: edge %d-%d: %w", methodRandomRegular, stubs[i], stubs[i+1], err)
				}
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
