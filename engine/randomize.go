package engine

import (
	"math"

	"github.com/maxedgeorient/meo/core"
)

// RandomOrient assigns each conflict edge an independently, uniformly
// random FORWARD or BACKWARD orientation. Runs FindConflicts first if it
// has not already run.
func (e *Engine) RandomOrient() error {
	if e.conflictEdges == nil {
		if _, err := e.FindConflicts(); err != nil {
			return err
		}
	}

	for _, ed := range e.conflictEdges {
		ed.ResetFlipCount()
		o := core.OrientedForward
		if e.rng.Float64() < 0.5 {
			o = core.OrientedBackward
		}
		if err := ed.SetOrientation(o); err != nil {
			return err
		}
	}
	e.invalidate()
	return nil
}

// RandSln runs RandomOrient DefaultRandRestarts times, keeping the best
// scoring configuration found. See RandSlnN to control the iteration count.
func (e *Engine) RandSln() (float64, error) {
	return e.RandSlnN(DefaultRandRestarts)
}

// RandSlnN runs RandomOrient iterations times, restoring the best-scoring
// conflict-edge orientation found across all of them.
func (e *Engine) RandSlnN(iterations int) (float64, error) {
	best := math.Inf(-1)

	for i := 0; i < iterations; i++ {
		if err := e.RandomOrient(); err != nil {
			return 0, err
		}
		score, err := e.GlobalScore()
		if err != nil {
			return 0, err
		}
		if score > best {
			best = score
			if _, err := e.SaveConflictOrientations(); err != nil {
				return 0, err
			}
		}
	}

	if err := e.LoadConflictOrientations(e.savedOrientations); err != nil {
		return 0, err
	}
	e.log.Info("random orientation complete", "iterations", iterations, "best_global_score", best)
	return best, nil
}

// RandPlusSearchSln runs RandomOrient followed by LocalSearchSln
// DefaultRandRestarts times, keeping the best-scoring configuration found.
// See RandPlusSearchSlnN to control the iteration count.
func (e *Engine) RandPlusSearchSln() (float64, error) {
	return e.RandPlusSearchSlnN(DefaultRandRestarts)
}

// RandPlusSearchSlnN runs RandomOrient followed by LocalSearchSln
// iterations times, restoring the best-scoring conflict-edge orientation
// found across all of them.
func (e *Engine) RandPlusSearchSlnN(iterations int) (float64, error) {
	best := math.Inf(-1)

	for i := 0; i < iterations; i++ {
		if err := e.RandomOrient(); err != nil {
			return 0, err
		}
		if _, err := e.LocalSearchSln(); err != nil {
			return 0, err
		}
		score, err := e.GlobalScore()
		if err != nil {
			return 0, err
		}
		if score > best {
			best = score
			if _, err := e.SaveConflictOrientations(); err != nil {
				return 0, err
			}
		}
	}

	if err := e.LoadConflictOrientations(e.savedOrientations); err != nil {
		return 0, err
	}
	e.log.Info("random + local search complete", "iterations", iterations, "best_global_score", best)
	return best, nil
}
