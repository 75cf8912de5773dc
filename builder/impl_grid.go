// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// impl_grid.go - Grid(rows, cols): a 4-neighborhood lattice.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r, c) gets idFn(r*cols + c); vertices added row-major.
//   - For each cell in row-major order: right route first, then down route.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		ids, err := addVertices(methodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err = connect(methodGrid, g, cfg, ids[at], ids[at+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(methodGrid, g, cfg, ids[at], ids[at+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
