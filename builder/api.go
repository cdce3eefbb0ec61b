// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Contract:
//   - One orchestrator per graph kind: BuildGraph / BuildWeightedGraph
//     resolve the config, run constructors in order on a fresh Sketch and
//     hand the resulting vertex list to the graph package.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/graph"
)

// Constructor applies a deterministic mutation to a Sketch using the
// resolved builderConfig. Constructors validate parameters before touching
// the sketch and emit edges in a stable, documented order.
type Constructor func(s *Sketch, cfg builderConfig) error

// BuildGraph builds an unweighted graph named label from constructors.
//
// Errors:
//   - ErrOptionViolation listing every invalid option;
//   - ErrConstructFailed for a nil constructor;
//   - constructor errors wrapped as "BuildGraph: %w".
func BuildGraph(label string, bopts []BuilderOption, cons ...Constructor) (*graph.Graph[string], error) {
	s, cfg, err := run("BuildGraph", graph.Unweighted, bopts, cons)
	if err != nil {
		return nil, err
	}

	return graph.NewGraph(label, s.order, cfg.graphOpts...)
}

// BuildWeightedGraph is BuildGraph for weighted vertices; each edge weight is
// drawn from the configured WeightFn in emission order.
func BuildWeightedGraph(label string, bopts []BuilderOption, cons ...Constructor) (*graph.WeightedGraph[string], error) {
	s, cfg, err := run("BuildWeightedGraph", graph.Weighted, bopts, cons)
	if err != nil {
		return nil, err
	}

	return graph.NewWeightedGraph(label, s.order, cfg.graphOpts...)
}

func run(method string, kind graph.Kind, bopts []BuilderOption, cons []Constructor) (*Sketch, builderConfig, error) {
	cfg, err := newBuilderConfig(bopts...)
	if err != nil {
		return nil, cfg, fmt.Errorf("%s: %w", method, err)
	}

	s := newSketch(kind, cfg.directed)
	for i, fn := range cons {
		if fn == nil {
			return nil, cfg, fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err = fn(s, cfg); err != nil {
			return nil, cfg, fmt.Errorf("%s: %w", method, err)
		}
	}

	return s, cfg, nil
}

// Lookup finds the vertex carrying id. Builders use string IDs as payloads.
// Complexity: O(V).
func Lookup[G interface{ Vertices() []*graph.Vertex[string] }](g G, id string) (*graph.Vertex[string], bool) {
	for _, v := range g.Vertices() {
		if v.Value() == id {
			return v, true
		}
	}

	return nil, false
}
