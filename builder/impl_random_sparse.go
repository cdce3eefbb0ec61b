// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (ErrNeedRandSource).
//   • Trials run i ascending, then j ascending; undirected builds try each
//     unordered pair {i<j} once, directed builds every ordered pair i≠j.
//   • One rng draw per trial, then one weight draw per accepted edge, so a
//     seed fixes the graph completely.
//
// Complexity: O(n) vertices + O(n²) trials.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			s.AddVertex(cfg.idFn(i))
		}

		accept := func() bool {
			switch {
			case p == MinProbability:
				return false
			case p == MaxProbability:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		for i := 0; i < n; i++ {
			from := 0
			if !s.directed {
				from = i + 1
			}
			for j := from; j < n; j++ {
				if i == j || !accept() {
					continue
				}
				if err := s.AddEdge(cfg.idFn(i), cfg.idFn(j), s.draw(cfg)); err != nil {
					return fmt.Errorf("%s: %w", MethodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
