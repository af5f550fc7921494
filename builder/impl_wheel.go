// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Canonical definition: Wₙ = Cₙ₋₁ + hub, so n ≥ 4.
//
// Contract:
//   • The rim occupies the first n-1 ids of the block, the hub is the last id.
//   • Rim edges first (ascending), then spokes hub-rim[i] in ascending i.
//   • W_4 is K_4 (one maximal clique); W_n for n ≥ 5 has n-1 triangles.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size n-1 which must be ≥ 3
)

// Wheel returns a Constructor that appends a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// 1) The rim must be a simple cycle.
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		// 2) Rim C_{n-1} on the first n-1 ids.
		base := d.AddBlock(n)
		if err := ring(d, base, n-1); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		// 3) Spokes from the hub, which takes the last id.
		hub := base + n - 1
		for i := 0; i < n-1; i++ {
			if err := d.AddEdge(hub, base+i); err != nil {
				return fmt.Errorf("%s: spoke %d: %w", methodWheel, i, err)
			}
		}

		return nil
	}
}
