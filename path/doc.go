// Package path enumerates and represents source-to-target paths over a
// core.Graph: bounded-depth simple paths, their cached weight statistics,
// and the ranking comparators used to order them for output.
//
// A Path registers itself with every edge it crosses (core.Edge.AssociatePath)
// so that the orientation engine can later ask each edge which paths want it
// in which direction, without Path or Edge holding a pointer to one another —
// the association is keyed by the Path's stable integer id, never an object
// reference, which keeps this package and core free of import cycles with
// the engine package built on top of both.
package path
