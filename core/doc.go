// Package core defines the fundamental data model of the maximum edge
// orientation (MEO) solver: vertices, the two edge variants (directed and
// undirected), and the Graph registry that owns them.
//
// A Graph is built once at startup by the I/O boundary (see package
// ioformat) and never destroyed before process exit. Vertices and edges are
// addressed by stable integer id, assigned in insertion order, so that
// downstream packages (path, engine, wcsp) can reference them without
// import cycles: core never imports any package that imports core.
//
// Two edge variants share the Edge interface:
//
//   - DirectedEdge: a fixed From→To edge. Always "fixed" — its direction
//     never changes.
//   - UndirectedEdge: an edge between two endpoints whose Orientation
//     starts UNORIENTED and is mutated by the orientation engine: an edge
//     all of whose paths agree becomes FIXED-FORWARD or FIXED-BACKWARD, a
//     conflict edge moves between FORWARD and BACKWARD, and an unused edge
//     stays UNORIENTED.
//
// Only UndirectedEdge implements MutableEdge, the capability interface that
// exposes orientation mutation. Engine code type-switches on this interface
// rather than maintaining a parallel "is this edge mutable" flag.
package core
