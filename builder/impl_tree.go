// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_tree.go - implementation of Tree(arity, depth) constructor.
//
// Contract:
//   • arity ≥ 1 and depth ≥ 1 (else ErrTooFewVertices).
//   • Vertices are numbered breadth-first: the root is index 0 and the
//     children of i are arity*i+1 .. arity*i+arity. IDs come from cfg.idFn.
//   • Edges parent -> child are emitted in index order. Undirected builds
//     also add child -> parent; use WithDirected for a rooted tree whose
//     SetLevels levels equal the layer number.
//
// Complexity: O(N) vertices and edges, N = (arity^depth - 1)/(arity - 1).

package builder

import "fmt"

// Tree returns a Constructor that builds a complete arity-ary tree with
// depth layers.
func Tree(arity, depth int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if arity < MinTreeArity || depth < MinTreeDepth {
			return fmt.Errorf("%s: arity=%d (min %d), depth=%d (min %d): %w",
				MethodTree, arity, MinTreeArity, depth, MinTreeDepth, ErrTooFewVertices)
		}

		n := TreeSize(arity, depth)
		for i := 0; i < n; i++ {
			s.AddVertex(cfg.idFn(i))
		}
		for child := 1; child < n; child++ {
			parent := (child - 1) / arity
			if err := s.AddEdge(cfg.idFn(parent), cfg.idFn(child), s.draw(cfg)); err != nil {
				return fmt.Errorf("%s: %w", MethodTree, err)
			}
		}

		return nil
	}
}

// TreeSize returns the number of vertices Tree(arity, depth) builds.
func TreeSize(arity, depth int) int {
	n, layer := 0, 1
	for d := 0; d < depth; d++ {
		n += layer
		layer *= arity
	}

	return n
}
