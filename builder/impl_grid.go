// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are the fixed coordinate scheme "r,c"; cfg.idFn is not used.
//   • Vertices are added row-major; for each (r,c) the Right edge is emitted
//     before the Bottom edge.
//
// Complexity: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import "fmt"

const gridIDFmt = "%d,%d"

// GridID returns the ID Grid gives to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.AddVertex(GridID(r, c))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := s.AddEdge(u, GridID(r, c+1), s.draw(cfg)); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
				if r+1 < rows {
					if err := s.AddEdge(u, GridID(r+1, c), s.draw(cfg)); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
