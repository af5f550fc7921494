// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_edges.go - Edges(n, pairs) constructor for hand-written fixtures.
//
// Contract:
//   • n ≥ 0; every pair endpoint in [0, n) relative to the block (else
//     ErrConstructFailed); self-loops are rejected.
//   • Pairs are emitted in argument order; repeats collapse when frozen.
//
// Complexity: O(n + len(pairs)).

package builder

import "fmt"

const methodEdges = "Edges"

// Edges returns a Constructor that appends n vertices connected by pairs,
// given as block-relative ids.
func Edges(n int, pairs ...[2]int) Constructor {
	es := append([][2]int(nil), pairs...) // the caller may reuse pairs
	return func(d *Draft, _ builderConfig) error {
		// 1) Validate every pair before reserving ids, so a bad fixture
		// leaves the draft untouched.
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodEdges, n, ErrTooFewVertices)
		}
		for i, p := range es {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return fmt.Errorf("%s: pair #%d (%d,%d) outside [0,%d): %w", methodEdges, i, p[0], p[1], n, ErrConstructFailed)
			}
		}

		// 2) Shift block-relative pairs by base.
		base := d.AddBlock(n)
		for _, p := range es {
			if err := d.AddEdge(base+p[0], base+p[1]); err != nil {
				return fmt.Errorf("%s: %w", methodEdges, err)
			}
		}

		return nil
	}
}
