// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: n=1 < min=2: ...").
//   • Option mistakes are collected while options are applied and reported
//     together, wrapped in ErrOptionViolation, when a Build* call starts.
//   • Structural failures from the graph package (kind mismatch, NaN weight)
//     pass through wrapped, so graph.ErrStructural still matches.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, arity,
// depth) is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied at all,
// e.g. a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates one or more meaningless option values
// (nil ID scheme, nil RNG, nil or negative weight policy).
var ErrOptionViolation = errors.New("builder: invalid option value")
