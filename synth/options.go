package synth

import "math/rand/v2"

// Option customizes a Config before a Constructor runs.
type Option func(*Config)

// WithIDScheme sets the deterministic vertex-naming function index -> name.
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("synth: WithIDScheme(nil)")
	}
	return func(c *Config) { c.idFn = fn }
}

// WithRand supplies an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible fixtures.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *Config) { c.rng = r }
}

// WithSeed creates a new deterministic RNG from the given seed pair.
func WithSeed(seed1, seed2 uint64) Option {
	return func(c *Config) { c.rng = rand.New(rand.NewPCG(seed1, seed2)) }
}

// WithWeightFn overrides the per-edge weight generator. The result must
// lie in (0,1] or graph construction will fail with core.ErrBadWeight.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("synth: WithWeightFn(nil)")
	}
	return func(c *Config) { c.weightFn = fn }
}

// WithNodeWeightFn overrides the per-vertex node-weight generator. The
// result must lie in [0,1] or graph construction will fail with
// core.ErrBadNodeWeight.
func WithNodeWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("synth: WithNodeWeightFn(nil)")
	}
	return func(c *Config) { c.nodeWeightFn = fn }
}

// WithTargetWeightFn overrides the per-target weight generator used for
// vertices named by WithTargets. The result must lie in [0,1].
func WithTargetWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("synth: WithTargetWeightFn(nil)")
	}
	return func(c *Config) { c.targetWeightFn = fn }
}

// WithDirectedFraction sets the probability that any given generated edge
// is emitted directed rather than undirected. Panics outside [0,1].
func WithDirectedFraction(frac float64) Option {
	if frac < 0 || frac > 1 {
		panic("synth: WithDirectedFraction outside [0,1]")
	}
	return func(c *Config) { c.directedFrac = frac }
}

// WithPartitionPrefix sets the CompleteBipartite left/right vertex-name
// prefixes. Empty values fall back to the package defaults ("L"/"R").
func WithPartitionPrefix(left, right string) Option {
	return func(c *Config) {
		if left != "" {
			c.leftPrefix = left
		}
		if right != "" {
			c.rightPrefix = right
		}
	}
}

// WithSources marks the vertices at the given zero-based topology indices
// as path sources once the Constructor has finished building the graph.
func WithSources(idx ...int) Option {
	return func(c *Config) { c.sources = idx }
}

// WithTargets marks the vertices at the given zero-based topology indices
// as weighted path targets once the Constructor has finished building the
// graph, each drawing its target weight from cfg.targetWeightFn.
func WithTargets(idx ...int) Option {
	return func(c *Config) { c.targets = idx }
}
