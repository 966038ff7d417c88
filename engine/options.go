package engine

import (
	"log/slog"
	"math/rand/v2"
)

// DefaultMaxPathLength is the bounded-DFS depth used by FindPaths when no
// Option overrides it.
const DefaultMaxPathLength = 5

// DefaultRandRestarts is the iteration count used by RandSln and
// RandPlusSearchSln when none is given explicitly.
const DefaultRandRestarts = 10

// Option configures a new Engine.
type Option func(*Engine)

// WithRand injects the PRNG used by RandomOrient. Two engines built with
// rand.New(rand.NewPCG(seed, seed)) (or any other deterministically-seeded
// source) produce identical orientation vectors across runs — the engine
// never reaches for the global generator.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithMaxPathLength overrides DefaultMaxPathLength.
func WithMaxPathLength(n int) Option {
	return func(e *Engine) { e.maxPathLength = n }
}

// WithLogger overrides the engine's structured logger. The zero value logs
// nothing (slog.New with a discard handler), matching the teacher pack's
// preference for an explicit, injectable logger over a package-level
// global.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}
