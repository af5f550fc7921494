// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: n=%d < min=%d: %w".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree,
// part size) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or WithRelabel
// requires a non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not produce a valid
// topology: a nil constructor, an edge outside its block, a self-loop, or
// exhausted retries (RandomRegular).
var ErrConstructFailed = errors.New("builder: construction failed")
