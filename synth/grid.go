package synth

import (
	"fmt"

	"github.com/maxedgeorient/meo/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows x cols orthogonal grid
// with 4-neighborhood (right and bottom neighbors per cell). Vertex names
// use the fixed coordinate scheme "r,c", a deliberate exception to
// cfg.idFn to keep generated fixtures legible.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := make(map[[2]int]int, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				name := fmt.Sprintf(gridIDFmt, r, c)
				id, err := g.AddVertex(name, cfg.nodeWeightFn(cfg.rng))
				if err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, name, err)
				}
				ids[[2]int{r, c}] = id
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[[2]int{r, c}]

				if c+1 < cols {
					if err := addEdge(g, cfg, u, ids[[2]int{r, c + 1}]); err != nil {
						return fmt.Errorf("%s: edge (%d,%d)-(%d,%d): %w", methodGrid, r, c, r, c+1, err)
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, u, ids[[2]int{r + 1, c}]); err != nil {
						return fmt.Errorf("%s: edge (%d,%d)-(%d,%d): %w", methodGrid, r, c, r+1, c, err)
					}
				}
			}
		}
		return nil
	}
}
