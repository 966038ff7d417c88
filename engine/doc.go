// Package engine runs the maximum-edge-orientation optimization over a
// core.Graph: path enumeration, conflict-edge detection, the scoring
// functions, and the Random / Random-plus-search / Local-search
// orientation algorithms. The WCSP generate/score phases live in the
// sibling wcsp package; Engine only exposes the hooks (ConflictEdges,
// FlipDelta, SaveConflictOrientations/LoadConflictOrientations) that wcsp
// and the CLI need to drive them.
//
// An Engine is single-threaded and synchronous, matching the source
// algorithm: no goroutines, no locks, deterministic given an injected
// *rand.Rand.
package engine
