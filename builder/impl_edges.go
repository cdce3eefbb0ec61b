// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_edges.go - implementation of the Edges(list) constructor.
//
// Contract:
//   - Endpoints are taken verbatim as vertex IDs; cfg.idFn is not consulted.
//   - Vertices are created in first-mention order, edges emitted in list order.
//   - Weighted builds use each Edge.Weight as given; cfg.weightFn is not
//     consulted. Unweighted builds ignore the weight.
//   - An empty endpoint ID is rejected with ErrConstructFailed.
//
// Complexity: O(len(list)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/graph"
)

// Edge is one explicit u -> v entry for the Edges constructor.
type Edge struct {
	From, To string
	Weight   float64
}

// Edges returns a Constructor that emits a hand-written edge list.
func Edges(list ...Edge) Constructor {
	return func(s *Sketch, _ builderConfig) error {
		for i, e := range list {
			if e.From == "" || e.To == "" {
				return fmt.Errorf("%s: edge #%d has an empty endpoint: %w", MethodEdges, i, ErrConstructFailed)
			}
		}

		for _, e := range list {
			w := e.Weight
			if s.Kind() != graph.Weighted {
				w = 0
			}
			if err := s.AddEdge(e.From, e.To, w); err != nil {
				return fmt.Errorf("%s: %w", MethodEdges, err)
			}
		}

		return nil
	}
}
