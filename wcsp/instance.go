package wcsp

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/engine"
)

// Generate writes an XCSP 2.1 WCSP instance for e's current conflict edges
// and conflict paths to w. Runs FindConflicts first if it has not already
// run. Returns ErrNoConflictEdges if there is nothing to orient.
func Generate(e *engine.Engine, w io.Writer) error {
	conflictEdges, err := e.ConflictEdges()
	if err != nil {
		return err
	}
	if len(conflictEdges) == 0 {
		return ErrNoConflictEdges
	}

	paths, err := e.Paths()
	if err != nil {
		return err
	}

	index := make(map[core.Edge]int, len(conflictEdges))
	for i, ed := range conflictEdges {
		index[ed] = i
	}

	conflictPaths := make([]conflictPath, 0, len(paths))
	for _, p := range paths {
		if !p.HasConflictEdge() {
			continue
		}
		cp, err := buildConflictPath(p, index)
		if err != nil {
			return err
		}
		conflictPaths = append(conflictPaths, cp)
	}

	bw := bufio.NewWriter(w)
	if err := writeInstance(bw, len(conflictEdges), conflictPaths); err != nil {
		return err
	}
	return bw.Flush()
}

// conflictPath is the subset of a path's data Generate needs: the variable
// (conflict edge) indices it crosses, the tuple value each must take to
// satisfy the path, and the cost of failing to do so.
type conflictPath struct {
	varIndices []int
	tuple      []int
	cost       int64
}

func buildConflictPath(p pathLike, index map[core.Edge]int) (conflictPath, error) {
	edges := p.Edges()
	var cp conflictPath
	for i, e := range edges {
		idx, ok := index[e]
		if !ok {
			continue
		}
		cp.varIndices = append(cp.varIndices, idx)
		if p.Desired(i) == core.Forward {
			cp.tuple = append(cp.tuple, 1)
		} else {
			cp.tuple = append(cp.tuple, 0)
		}
	}
	if len(cp.varIndices) == 0 {
		return cp, fmt.Errorf("wcsp: path %d has HasConflictEdge true but no conflict-edge variable", p.ID())
	}
	cp.cost = int64(math.Round(p.MaxWeight() * 1000))
	return cp, nil
}

// pathLike is the *path.Path surface Generate needs; declared locally to
// keep this file's dependency on the path package to an interface instead
// of the concrete type, matching the narrow-interface idiom used elsewhere
// in this module.
type pathLike interface {
	ID() int
	Edges() []core.Edge
	Desired(i int) core.Direction
	MaxWeight() float64
}

func writeInstance(w *bufio.Writer, numVars int, paths []conflictPath) error {
	numCp := len(paths)

	fmt.Fprintln(w, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "<instance>")
	fmt.Fprintln(w, `<presentation name="EdgeOrientation" format="XCSP 2.1" type="WCSP"/>`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `<domains nbDomains="1">`)
	fmt.Fprintln(w, `<domain name="D0" nbValues="2">0..1</domain>`)
	fmt.Fprintln(w, "</domains>")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "<variables nbVariables=\"%d\">\n", numVars)
	for i := 0; i < numVars; i++ {
		fmt.Fprintf(w, "<variable name=\"E%d\" domain=\"D0\"/>\n", i)
	}
	fmt.Fprintln(w, "</variables>")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "<relations nbRelations=\"%d\">\n", numCp)
	for i, cp := range paths {
		writeRelation(w, i, cp)
	}
	fmt.Fprintln(w, "</relations>")
	fmt.Fprintln(w)

	maxCost := int64(1000)*int64(numCp) + 1
	fmt.Fprintf(w, "<constraints nbConstraints=\"%d\" maximalCost=\"%d\">\n", numCp, maxCost)
	for i, cp := range paths {
		writeConstraint(w, i, cp)
	}
	fmt.Fprintln(w, "</constraints>")
	fmt.Fprintln(w, "</instance>")
	return nil
}

// writeRelation emits the one zero-cost tuple that satisfies conflict path
// i, defaulting every other assignment's cost to the path's scaled max
// weight (the cost of breaking it).
func writeRelation(w *bufio.Writer, i int, cp conflictPath) {
	fmt.Fprintf(w, "<relation name=\"R%d\" arity=\"%d\" nbTuples=\"1\" semantics=\"soft\" defaultCost=\"%d\">0:",
		i, len(cp.tuple), cp.cost)
	for j, v := range cp.tuple {
		if j > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%d", v)
	}
	fmt.Fprintln(w, "</relation>")
}

// writeConstraint emits the scope (the conflict-edge variables path i
// crosses) and points it at relation i.
func writeConstraint(w *bufio.Writer, i int, cp conflictPath) {
	fmt.Fprintf(w, "<constraint name=\"C%d\" arity=\"%d\" scope=\"", i, len(cp.varIndices))
	for j, idx := range cp.varIndices {
		if j > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "E%d", idx)
	}
	fmt.Fprintf(w, "\" reference=\"R%d\"/>\n", i)
}
