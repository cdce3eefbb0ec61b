// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier)
//     and reports every recorded option mistake at once.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn       ("0","1","2",...)
//   • rng       = nil               (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn   (DefaultEdgeWeight)
//   • directed  = false             (every edge is stored both ways)
//   • graphOpts = none              (graph.DefaultOptions)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvwalk/graph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices and weight draws; nil means no randomness.
	rng *rand.Rand
	// Weight generator; consulted only by weighted builds.
	weightFn WeightFn
	// directed stores each emitted edge u->v only; otherwise v->u is added too.
	directed bool
	// graphOpts are forwarded to graph.NewGraph / graph.NewWeightedGraph.
	graphOpts []graph.Option

	// errs collects option mistakes; surfaced by newBuilderConfig.
	errs *multierror.Error
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Every invalid option is reported, wrapped in
// ErrOptionViolation.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) (builderConfig, error) {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		if opt == nil {
			cfg.reject("nil BuilderOption")
			continue
		}
		opt(&cfg)
	}

	if err := cfg.errs.ErrorOrNil(); err != nil {
		return builderConfig{}, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}

	return cfg, nil
}

// reject records an option mistake.
func (c *builderConfig) reject(format string, args ...any) {
	c.errs = multierror.Append(c.errs, fmt.Errorf(format, args...))
}

// weight draws the next edge weight for weighted builds.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
