// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Meaningless values (nil scheme, nil RNG, nil weight policy) never panic
//     here: they are recorded and BuildGraph fails with ErrOptionViolation.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvwalk/graph"
)

// BuilderOption customizes a build by mutating the builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.reject("WithIDScheme(nil)")
			return
		}
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders and weight draws.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.reject("WithRand(nil)")
			return
		}
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator of weighted builds.
// The function receives the (possibly nil) RNG.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.reject("WithWeightFn(nil)")
			return
		}
		c.weightFn = fn
	}
}

// WithDirected stores every emitted edge in one direction only (u -> v).
// By default both u -> v and v -> u are appended.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithGraphOptions forwards options (logger, output) to the graph constructor.
func WithGraphOptions(opts ...graph.Option) BuilderOption {
	return func(c *builderConfig) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}
