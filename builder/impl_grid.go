// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) has id base + r*cols + c (row-major).
//   • For each cell emit Right then Bottom neighbor when present.
//   • A grid is triangle-free: its maximal cliques are its edges
//     (or the single vertex of a 1×1 grid).
//
// Complexity: O(rows*cols).
//
// Determinism:
//   • Cells are visited row-major; Right precedes Bottom for every cell.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// 1) Both dimensions must be positive.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) One block for all cells; id maps (r,c) into it.
		base := d.AddBlock(rows * cols)
		id := func(r, c int) int { return base + r*cols + c }

		// 3) Emit each cell's Right and Bottom edges.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols { // not in the last column
					if err := d.AddEdge(id(r, c), id(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows { // not in the last row
					if err := d.AddEdge(id(r, c), id(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
