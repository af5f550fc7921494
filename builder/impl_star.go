// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first vertex of the block; leaves follow in ascending order.
//   • A star with n-1 leaves has n-1 maximal cliques {hub, leaf}.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := d.AddBlock(n) // first id of the block
		for i := 1; i < n; i++ { // leaves hub+1..hub+n-1
			if err := d.AddEdge(hub, hub+i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
