// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending order.
//   • Emits i -> j for every i < j, i ascending then j ascending. Undirected
//     builds mirror each edge, so every vertex sees all others.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			s.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := s.AddEdge(cfg.idFn(i), cfg.idFn(j), s.draw(cfg)); err != nil {
					return fmt.Errorf("%s: %w", MethodComplete, err)
				}
			}
		}

		return nil
	}
}
