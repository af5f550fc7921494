// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng     = nil    (pure/deterministic unless seeded)
//   • relabel = false  (block layout ids are kept)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// relabel applies a random permutation to the final vertex ids.
	relabel bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
