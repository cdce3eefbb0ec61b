// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in increasing order.
//   - Weighted builds draw one weight per edge from cfg.weightFn.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			s.AddVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			if err := s.AddEdge(cfg.idFn(i-1), cfg.idFn(i), s.draw(cfg)); err != nil {
				return fmt.Errorf("%s: %w", MethodPath, err)
			}
		}

		return nil
	}
}
