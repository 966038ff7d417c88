package path

import (
	"errors"
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

// FindPaths enumerates every simple path of length 1..maxLength whose first
// vertex is a source and last vertex is a target, by bounded depth-first
// search from each source vertex. Directed edges may only be departed from
// their From vertex; undirected edges are traversable from either endpoint.
// A walk that crosses an edge already fixed in the wrong direction is
// silently discarded (it can never be satisfied); every other complete walk
// becomes a Path, registered with its edges in the order found.
//
// Path ids are assigned in emission order starting at 0 and are stable only
// for the returned slice: callers that re-run FindPaths must first call
// Deregister on every path in the prior slice.
func FindPaths(g *core.Graph, maxLength int) ([]*Path, error) {
	if maxLength < 1 {
		return nil, ErrInvalidLength
	}

	var paths []*Path
	nextID := 0

	for _, src := range g.Sources() {
		visited := map[int]bool{src: true}
		vertices := []int{src}
		var edges []core.Edge

		var walk func(cur int) error
		walk = func(cur int) error {
			v := g.Vertex(cur)
			if len(edges) > 0 && v.IsTarget() {
				p, err := NewPath(g, nextID, append([]int(nil), vertices...), append([]core.Edge(nil), edges...))
				switch {
				case err == nil:
					paths = append(paths, p)
					nextID++
				case errors.Is(err, ErrInfeasible):
					// discard: this walk can never be satisfied
				default:
					return fmt.Errorf("path: enumerate: %w", err)
				}
			}
			if len(edges) >= maxLength {
				return nil
			}

			step := func(e core.Edge) error {
				a, b := e.Endpoints()
				to := a
				if cur == a {
					to = b
				}
				if _, ok := e.DepartDirection(cur); !ok {
					return nil
				}
				if visited[to] {
					return nil
				}
				visited[to] = true
				vertices = append(vertices, to)
				edges = append(edges, e)

				err := walk(to)

				edges = edges[:len(edges)-1]
				vertices = vertices[:len(vertices)-1]
				visited[to] = false
				return err
			}

			for _, eid := range v.OutDirectedEdgeIDs() {
				if err := step(g.DirectedEdge(eid)); err != nil {
					return err
				}
			}
			for _, eid := range v.UndirectedEdgeIDs() {
				if err := step(g.UndirectedEdge(eid)); err != nil {
					return err
				}
			}
			return nil
		}

		if err := walk(src); err != nil {
			return nil, err
		}
	}

	return paths, nil
}
