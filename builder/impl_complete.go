// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_complete.go - Complete(n) and Empty(n) constructors.
//
// Contract:
//   • Complete: n ≥ 1 (else ErrTooFewVertices); K_n has exactly one maximal clique.
//   • Empty: n ≥ 0; n isolated vertices, each its own singleton maximal clique.
//
// Complexity:
//   • Complete: O(n²) edges. Empty: O(1).
//
// Determinism:
//   • Pairs {i,j} are emitted lexicographically by (i,j), i<j.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	methodEmpty      = "Empty"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// 1) Parameter validation: K_n is defined for n ≥ 1.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// 2) Reserve the block; ids base..base+n-1 are ours.
		base := d.AddBlock(n)

		// 3) Every pair inside the block, in (i,j) order.
		if err := d.addClique(span(base, n)); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}

		return nil
	}
}

// Empty returns a Constructor that appends n isolated vertices.
func Empty(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodEmpty, n, ErrTooFewVertices)
		}
		d.AddBlock(n) // vertices only, no edges

		return nil
	}
}
