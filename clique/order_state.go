package clique

import (
	"fmt"
	"slices"
)

// OrderState is the mutable context of the adaptive variants: a global visit
// order over all vertices plus a skip mask of vertices already covered by a
// reported clique. It is owned by a single search and is not safe for
// concurrent use.
//
// Invariant: order is always a permutation of 0..n-1 and pos is its inverse.
type OrderState struct {
	order   []int
	pos     []int
	covered []bool
	ncov    int
}

// NewOrderState returns the state for n vertices. A nil seed means the identity
// order; otherwise seed must be a permutation of 0..n-1 (ErrInvalidOrder).
func NewOrderState(n int, seed []int) (*OrderState, error) {
	if err := checkPermutation(n, seed); err != nil {
		return nil, err
	}

	st := &OrderState{
		order:   make([]int, n),
		pos:     make([]int, n),
		covered: make([]bool, n),
	}
	for i := range st.order {
		st.order[i] = i
		if seed != nil {
			st.order[i] = seed[i]
		}
	}
	st.reindex()

	return st, nil
}

func checkPermutation(n int, order []int) error {
	if order == nil {
		return nil
	}
	if len(order) != n {
		return fmt.Errorf("clique: order has %d entries for n=%d: %w", len(order), n, ErrInvalidOrder)
	}
	seen := make([]bool, n)
	for i, v := range order {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("clique: order[%d]=%d: %w", i, v, ErrInvalidOrder)
		}
		seen[v] = true
	}

	return nil
}

func (st *OrderState) reindex() {
	for i, v := range st.order {
		st.pos[v] = i
	}
}

// ReorderAfterClique marks every vertex of c as covered and rebuilds the order
// as the uncovered vertices followed by the covered ones, each group keeping its
// previous relative order. Out-of-range ids are ignored.
// Complexity: O(n + |c|).
func (st *OrderState) ReorderAfterClique(c []int) {
	for _, v := range c {
		if v >= 0 && v < len(st.covered) && !st.covered[v] {
			st.covered[v] = true
			st.ncov++
		}
	}

	next := make([]int, 0, len(st.order))
	for _, v := range st.order {
		if !st.covered[v] {
			next = append(next, v)
		}
	}
	for _, v := range st.order {
		if st.covered[v] {
			next = append(next, v)
		}
	}
	st.order = next
	st.reindex()
}

// Covered reports whether v belongs to some reported clique.
func (st *OrderState) Covered(v int) bool {
	return v >= 0 && v < len(st.covered) && st.covered[v]
}

// CoveredCount returns the number of covered vertices.
func (st *OrderState) CoveredCount() int { return st.ncov }

// Len returns n.
func (st *OrderState) Len() int { return len(st.order) }

// Order returns a copy of the current global order.
func (st *OrderState) Order() []int { return slices.Clone(st.order) }

// At returns the vertex at position i of the current order.
func (st *OrderState) At(i int) int { return st.order[i] }

// Position returns the index of v in the current order, or -1 if out of range.
func (st *OrderState) Position(v int) int {
	if v < 0 || v >= len(st.pos) {
		return -1
	}

	return st.pos[v]
}

// OrderedCandidates returns the uncovered members of p sorted by their position
// in the current order. p is not modified.
// Complexity: O(|p| log |p|).
func (st *OrderState) OrderedCandidates(p []int) []int {
	out := make([]int, 0, len(p))
	for _, v := range p {
		if !st.Covered(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b int) int { return st.pos[a] - st.pos[b] })

	return out
}
