// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fibpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex of cell (r, c) in a grid with cols columns.
func GridID(r, c, cols int) int {
	return r*cols + c
}

// Grid builds a rows×cols 4-neighborhood grid. Vertex GridID(r,c,cols)
// gets an arc to each orthogonal neighbor in both directions, so the
// grid is traversable on directed graphs too.
//
// Determinism: vertices row-major; for each cell emit right, left, down, up.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		addVertices(g, rows*cols)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c, cols)
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, GridID(r, c+1, cols)); err != nil {
						return err
					}
				}
				if c > 0 {
					if err := addEdge(methodGrid, g, cfg, u, GridID(r, c-1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, GridID(r+1, c, cols)); err != nil {
						return err
					}
				}
				if r > 0 {
					if err := addEdge(methodGrid, g, cfg, u, GridID(r-1, c, cols)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
