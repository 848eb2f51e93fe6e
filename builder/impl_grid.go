// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// impl_grid.go — implementation of Grid(rows, cols).
//
// Canonical model:
//   • rows×cols lattice, vertex id r*cols + c (row-major order).
//   • Each cell links to its Right (r,c+1) then Bottom (r+1,c) neighbor.
//     Only these two directions exist, so the lattice is acyclic.
//   • Source is the top-left cell 0, target the bottom-right cell N-1.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Path count is the binomial C(rows+cols-2, rows-1).
//
// Complexity:
//   • Time: O(rows*cols), Space: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a monotone rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (core.AdjacencyList, error) {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Emit Right then Bottom for every cell in row-major order.
		g := make(core.AdjacencyList, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				nbs := make([]int, 0, 2)
				if c+1 < cols {
					nbs = append(nbs, u+1)
				}
				if r+1 < rows {
					nbs = append(nbs, u+cols)
				}
				g[u] = nbs
			}
		}

		return cfg.finish(g), nil
	}
}
