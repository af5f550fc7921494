// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Ring edges i-(i+1) mod n in ascending i.
//   • C_3 is a triangle (one maximal clique); C_n for n ≥ 4 has n maximal cliques
//     of size 2.
//
// Complexity: O(n).
//
// Determinism: ring edges in ascending i; the closing edge (n-1)-0 comes last.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// 1) C_n needs at least three vertices to be simple.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// 2) Reserve the block and close the ring over it.
		base := d.AddBlock(n)
		if err := ring(d, base, n); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// ring connects base+i to base+(i+1)%n for every i.
func ring(d *Draft, base, n int) error {
	for i := 0; i < n; i++ { // i = n-1 wraps to base
		if err := d.AddEdge(base+i, base+(i+1)%n); err != nil {
			return err
		}
	}

	return nil
}
