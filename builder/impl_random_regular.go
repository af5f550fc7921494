// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_random_regular.go - RandomRegular(n, d) constructor.
//
// Canonical model: d-regular simple graph via stub matching with bounded
// retries. Stubs are shuffled per seed; a pairing is validated (no loops, no
// repeated pairs) before any edge is written, and reshuffled on failure.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n*d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts invalid pairings.
//
// Complexity: ~O(n·d) per attempt; attempts are constant-bounded.
//
// Determinism:
//   • For a fixed seed the shuffle sequence, and therefore the accepted
//     pairing, is fixed.
//   • No ids are reserved until a pairing is accepted.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 1000
)

// RandomRegular returns a Constructor that appends a random deg-regular graph.
func RandomRegular(n, deg int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Parameter validation.
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if deg < 0 || deg >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if (n*deg)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// 2) Stub list: vertex i repeated deg times.
		stubs := make([]int, 0, n*deg) // n*d half-edges
		for i := 0; i < n; i++ {
			for k := 0; k < deg; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			d.AddBlock(n) // d == 0: isolated vertices, no RNG draws
			return nil
		}

		// 3) Bounded reshuffles until a simple pairing appears.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue // loop or repeated pair, reshuffle
			}

			// 4) Commit: reserve the block and write the pairs as edges.
			base := d.AddBlock(n)
			for i := 0; i < len(stubs); i += 2 { // stubs[i] pairs with stubs[i+1]
				if err := d.AddEdge(base+stubs[i], base+stubs[i+1]); err != nil {
					return fmt.Errorf("%s: %w", methodRandomRegular, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a loop-free,
// repeat-free edge set.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false // self-loop
		}
		if u > v {
			u, v = v, u // canonical key for the undirected pair
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
