// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_multipartite.go - CompleteMultipartite(sizes...), CompleteBipartite and
// MoonMoser constructors.
//
// Contract:
//   • At least one part, every part size ≥ 1 (else ErrTooFewVertices).
//   • Parts occupy consecutive id ranges in argument order; every pair of
//     vertices in different parts is adjacent, vertices in the same part are not.
//   • The maximal cliques pick exactly one vertex per part, so there are
//     Π sizes of them, each of size len(sizes).
//   • MoonMoser(k) = CompleteMultipartite(3, 3, ..., 3) with k parts: 3^k maximal
//     cliques on 3k vertices, the worst case for clique enumeration.
//
// Complexity: O(n²) edges.
//
// Determinism:
//   • Cross-part pairs are emitted lexicographically by block-relative (u,v).

package builder

import "fmt"

const (
	methodCompleteMultipartite = "CompleteMultipartite"
	methodCompleteBipartite    = "CompleteBipartite"
	methodMoonMoser            = "MoonMoser"
	minPartSize                = 1
	moonMoserPartSize          = 3
)

// CompleteMultipartite returns a Constructor that appends K_{sizes[0],...,sizes[k-1]}.
func CompleteMultipartite(sizes ...int) Constructor {
	parts := append([]int(nil), sizes...) // detach from the caller's slice
	return func(d *Draft, _ builderConfig) error {
		// 1) Parameter validation; total is the block size.
		if len(parts) == 0 {
			return fmt.Errorf("%s: no parts: %w", methodCompleteMultipartite, ErrTooFewVertices)
		}
		total := 0
		for i, s := range parts {
			if s < minPartSize {
				return fmt.Errorf("%s: part %d size=%d < min=%d: %w", methodCompleteMultipartite, i, s, minPartSize, ErrTooFewVertices)
			}
			total += s
		}

		// 2) Reserve the block and tag every vertex with its part.
		base := d.AddBlock(total)
		part := make([]int, total) // part index of each block vertex
		for i, off := 0, 0; i < len(parts); i++ {
			for j := 0; j < parts[i]; j++ {
				part[off] = i
				off++ // parts are consecutive id ranges
			}
		}

		// 3) Join every pair that straddles two parts.
		for u := 0; u < total; u++ {
			for v := u + 1; v < total; v++ {
				if part[u] == part[v] {
					continue // same part stays independent
				}
				if err := d.AddEdge(base+u, base+v); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteMultipartite, err)
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	inner := CompleteMultipartite(n1, n2)
	return func(d *Draft, cfg builderConfig) error {
		if err := inner(d, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
		}

		return nil
	}
}

// MoonMoser returns a Constructor that appends the Moon–Moser graph with k
// triples (k ≥ 1).
func MoonMoser(k int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodMoonMoser, k, ErrTooFewVertices)
		}
		sizes := make([]int, k) // k triples
		for i := range sizes {
			sizes[i] = moonMoserPartSize
		}

		return CompleteMultipartite(sizes...)(d, cfg)
	}
}
