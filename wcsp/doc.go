// Package wcsp exports an Engine's conflict edges and conflict paths as a
// weighted constraint satisfaction problem instance in XCSP 2.1 format
// (suitable for toulbar2 and compatible solvers), and applies a solver's
// solution line back onto the graph.
//
// Every conflict edge becomes a binary variable (1 = oriented forward, 0 =
// oriented backward) over a shared two-value domain. Every path that
// crosses at least one conflict edge becomes one relation/constraint pair:
// the relation lists the single zero-cost tuple (the edge assignment that
// satisfies the path) and defaults every other tuple's cost to the path's
// maximum weight, scaled by 1000 and rounded, matching toulbar2's
// integer-cost convention.
package wcsp
