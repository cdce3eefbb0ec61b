// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub with fixed ID CenterVertexID first.
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits Center -> leaf[i]
//     in that order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Star returns a Constructor that builds a star: one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		s.AddVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := s.AddEdge(CenterVertexID, leaf, s.draw(cfg)); err != nil {
				return fmt.Errorf("%s: %w", MethodStar, err)
			}
		}

		return nil
	}
}
