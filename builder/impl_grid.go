// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighbourhood lattice with "r,c" IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstrace/kruskal"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // fixed coordinate scheme, idFn is not used
)

// Grid builds a rows×cols lattice. Cells are visited row-major; each cell
// emits its right neighbour edge, then its bottom neighbour edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) ([]kruskal.Edge, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		s := newEdgeSink(methodGrid, cfg, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := s.add(u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err := s.add(u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return nil, err
					}
				}
			}
		}

		return s.edges, nil
	}
}
