// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model: Erdős–Rényi G(n, p); each unordered pair {i,j}, i<j, is
// included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trial order is i asc, then j asc (j > i), so a fixed seed
// yields a fixed edge set.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate parameters before touching the draft.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Allocate the block and run the trials in stable order.
		base := d.AddBlock(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) { // one draw per pair, hit or miss
					continue
				}
				if err := d.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}

// bernoulli draws one trial; p ∈ {0,1} short-circuits without consuming the RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
