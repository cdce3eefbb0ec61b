// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			s.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := s.AddEdge(u, v, s.draw(cfg)); err != nil {
				return fmt.Errorf("%s: %w", MethodCycle, err)
			}
		}

		return nil
	}
}
