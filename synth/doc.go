// Package synth generates synthetic MEO graphs for examples, benchmarks,
// and tests: path, star, cycle, grid, complete-bipartite, Erdos-Renyi
// random, and random-regular topologies.
//
// Each Constructor is a closure over its shape parameters that populates a
// *core.Graph supplied by Build. Every generated edge is independently
// classified directed or undirected according to Config's directed
// fraction (WithDirectedFraction), except RandomRegular's, which are
// always undirected, and a caller-chosen subset of vertices
// can be marked as path sources (WithSources) and weighted targets
// (WithTargets) — the two concerns a general-purpose graph-fixture builder
// has no notion of, but every MEO instance needs.
package synth
