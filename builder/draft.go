// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// draft.go - the mutable accumulator constructors write into.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/adjacency"
)

// Draft collects vertices and edges while constructors run. It is not safe for
// concurrent use and is frozen into an adjacency.Sparse by BuildGraph.
type Draft struct {
	n     int
	edges []adjacency.Edge
}

// AddBlock appends k fresh vertices and returns the id of the first one.
// The block occupies ids [base, base+k).
func (d *Draft) AddBlock(k int) (base int) {
	base = d.n
	d.n += k

	return base
}

// AddEdge records the undirected edge {u, v}. Both ids must already exist.
// Self-loops are rejected because they never take part in a clique.
func (d *Draft) AddEdge(u, v int) error {
	if u < 0 || v < 0 || u >= d.n || v >= d.n {
		return fmt.Errorf("AddEdge(%d,%d) with n=%d: %w", u, v, d.n, ErrConstructFailed)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): self-loop: %w", u, v, ErrConstructFailed)
	}
	d.edges = append(d.edges, adjacency.Edge{U: u, V: v})

	return nil
}

// Order returns the number of vertices allocated so far.
func (d *Draft) Order() int { return d.n }

// EdgeCount returns the number of recorded edges, repeats included.
func (d *Draft) EdgeCount() int { return len(d.edges) }

// permute renames vertex v to perm[v] on every recorded edge.
func (d *Draft) permute(perm []int) {
	for i, e := range d.edges {
		d.edges[i] = adjacency.Edge{U: perm[e.U], V: perm[e.V]}
	}
}

// addClique connects every pair in ids, in (i asc, j asc) order.
// Complexity: O(len(ids)²).
func (d *Draft) addClique(ids []int) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := d.AddEdge(ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// span returns the ids base..base+k-1.
func span(base, k int) []int {
	ids := make([]int, k)
	for i := range ids {
		ids[i] = base + i
	}

	return ids
}
