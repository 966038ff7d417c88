package wcsp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/engine"
)

// ReadSolution reads a single line of whitespace-separated 0/1 tokens (one
// per conflict-edge variable, in the order Generate wrote them), as
// produced by a toulbar2-compatible solver: 1 means oriented forward, 0
// means oriented backward.
func ReadSolution(r io.Reader) ([]core.Orientation, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("wcsp: read solution: %w", err)
		}
		return nil, ErrEmptySolution
	}

	fields := strings.Fields(scanner.Text())
	out := make([]core.Orientation, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || (n != 0 && n != 1) {
			return nil, fmt.Errorf("%w: %q", ErrBadSolutionToken, f)
		}
		if n == 1 {
			out[i] = core.OrientedForward
		} else {
			out[i] = core.OrientedBackward
		}
	}
	return out, nil
}

// Score applies a solver solution read from r to e's conflict edges (one
// orientation per edge, in the order Generate wrote the variables) and
// returns the resulting GlobalScore. Returns ErrSolutionCountMismatch if the
// solution's token count does not match the number of conflict edges.
func Score(e *engine.Engine, r io.Reader) (float64, error) {
	orientations, err := ReadSolution(r)
	if err != nil {
		return 0, err
	}

	conflictEdges, err := e.ConflictEdges()
	if err != nil {
		return 0, err
	}
	if len(orientations) != len(conflictEdges) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrSolutionCountMismatch, len(orientations), len(conflictEdges))
	}

	if err := e.LoadConflictOrientations(orientations); err != nil {
		return 0, fmt.Errorf("wcsp: apply solution: %w", err)
	}
	return e.GlobalScore()
}
