// Package meo solves the maximum edge orientation problem: given a mixed
// directed/undirected weighted graph with marked source and target
// vertices, orient every undirected edge so the total weight of bounded-
// length simple source→target paths that end up satisfied is as large as
// possible.
//
// The module is organized under several subpackages:
//
//	core/      — Graph, Vertex, DirectedEdge, UndirectedEdge primitives
//	path/      — bounded-length simple path enumeration and live weighting
//	engine/    — conflict detection, random/local-search orientation,
//	             global score accounting, orientation vector persistence
//	wcsp/      — WCSP (toulbar2) instance export and solution scoring
//	ioformat/  — the edge-list text format parser and writer
//	config/    — run configuration loaded from a Java-style .properties file
//	synth/     — synthetic graph generators for examples, tests and
//	             benchmarks (paths, stars, cycles, grids, bipartite,
//	             Erdos-Renyi sparse, and random-regular topologies)
//	cmd/meo/   — the command-line entry point
//
// See SPEC_FULL.md for the full specification this module implements.
package meo
