package engine

import (
	"math"

	"github.com/maxedgeorient/meo/core"
)

// FlipDelta returns the change in GlobalScore that would result from
// flipping ed's current orientation, without mutating anything. It scans
// only the paths associated with ed (core.Edge.Associations), computing
// each one's current Weight() and its hypothetical weight with ed flipped
// via path.WeightIfEdgeFlipped.
func (e *Engine) FlipDelta(ed *core.UndirectedEdge) float64 {
	var gain, loss float64
	for _, assoc := range ed.Associations() {
		p := e.paths[assoc.PathID]
		cur := p.Weight()
		hypo := p.WeightIfEdgeFlipped(ed)
		switch {
		case hypo > cur:
			gain += hypo - cur
		case hypo < cur:
			loss += cur - hypo
		}
	}
	return gain - loss
}

// LocalSearchSln performs steepest-ascent edge-flip local search: at each
// step, flip the conflict edge with the largest positive FlipDelta; stop
// when no edge has a positive delta. If any conflict edge has not yet been
// oriented, RandomOrient runs first. The search is monotone (GlobalScore
// never decreases and strictly increases on every flip) and therefore
// terminates in a finite number of steps — there are finitely many
// orientation vectors and no vector repeats since the score strictly
// climbs.
func (e *Engine) LocalSearchSln() (float64, error) {
	if e.conflictEdges == nil {
		if _, err := e.FindConflicts(); err != nil {
			return 0, err
		}
	}
	if !e.conflictEdgesOriented() {
		e.log.Info("conflict edges not oriented, randomizing first")
		if err := e.RandomOrient(); err != nil {
			return 0, err
		}
	}

	global, err := e.GlobalScore()
	if err != nil {
		return 0, err
	}

	if len(e.conflictEdges) > 0 {
		e.log.Info("beginning edge flip local search")
		oldGlobal := math.Inf(-1)
		for oldGlobal < global {
			oldGlobal = global

			var bestEdge *core.UndirectedEdge
			bestDelta := math.Inf(-1)
			for _, ed := range e.conflictEdges {
				if d := e.FlipDelta(ed); d > bestDelta {
					bestDelta = d
					bestEdge = ed
				}
			}

			if bestDelta > 0 {
				if err := bestEdge.Flip(); err != nil {
					return 0, err
				}
				global += bestDelta
			}
		}
		e.invalidate()
		e.log.Info("local search finished", "global_score", global)
	}

	return e.GlobalScore()
}
