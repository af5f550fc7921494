// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges base+i-base+i+1 for i = 0..n-2, emitted in ascending i.
//   • P_n has n-1 maximal cliques, all of size 2.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := d.AddBlock(n)
		for i := 0; i < n-1; i++ { // n-1 edges, ascending
			if err := d.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
