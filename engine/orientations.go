package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maxedgeorient/meo/core"
)

// SaveConflictOrientations snapshots the current orientation of every
// conflict edge, overwriting any previously saved snapshot, and returns it.
// Requires FindConflicts to have run.
func (e *Engine) SaveConflictOrientations() ([]core.Orientation, error) {
	if e.conflictEdges == nil {
		return nil, ErrConflictsNotFound
	}
	saved := make([]core.Orientation, len(e.conflictEdges))
	for i, ed := range e.conflictEdges {
		saved[i] = ed.Orientation()
	}
	e.savedOrientations = saved
	return saved, nil
}

// LoadConflictOrientations applies orientations (one per conflict edge, in
// conflict-edge list order) and invalidates cached state. Passing nil
// reloads the last snapshot taken by SaveConflictOrientations.
func (e *Engine) LoadConflictOrientations(orientations []core.Orientation) error {
	if orientations == nil {
		if e.savedOrientations == nil {
			return ErrNoSavedOrientations
		}
		orientations = e.savedOrientations
	}
	if len(orientations) != len(e.conflictEdges) {
		return fmt.Errorf("%w: got %d, want %d", ErrOrientationCountMismatch, len(orientations), len(e.conflictEdges))
	}

	for i, o := range orientations {
		ed := e.conflictEdges[i]
		if ed.Orientation().IsFixed() {
			continue // already fixed by a prior load; nothing to restore
		}
		if err := ed.SetOrientation(o); err != nil {
			return fmt.Errorf("engine: load conflict orientations: edge %d: %w", ed.ID(), err)
		}
	}
	e.invalidate()
	return nil
}

// CompareOrientations returns the number of positions at which a and b
// disagree. Returns ErrOrientationCountMismatch if the slices differ in
// length.
func CompareOrientations(a, b []core.Orientation) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrOrientationCountMismatch, len(a), len(b))
	}
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff, nil
}

// WriteConflictOrientations writes the current orientation of every
// conflict edge to w as a single space-separated line of small integers
// (one token per core.Orientation value), matching ReadConflictOrientations.
func (e *Engine) WriteConflictOrientations(w io.Writer) error {
	if e.conflictEdges == nil {
		return ErrConflictsNotFound
	}
	var sb strings.Builder
	for i, ed := range e.conflictEdges {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(ed.Orientation())))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// ReadConflictOrientations reads a single whitespace-separated line of
// integer orientation tokens, as written by WriteConflictOrientations.
func ReadConflictOrientations(r io.Reader) ([]core.Orientation, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("engine: read conflict orientations: %w", err)
		}
		return nil, nil
	}
	fields := strings.Fields(scanner.Text())
	out := make([]core.Orientation, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < int(core.Unoriented) || n > int(core.FixedBackward) {
			return nil, fmt.Errorf("%w: %q", ErrBadOrientationToken, f)
		}
		out[i] = core.Orientation(n)
	}
	return out, nil
}
