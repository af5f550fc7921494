package ordering

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvclique/adjacency"
)

// Natural returns 0..n-1.
func Natural(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}

	return out
}

// ByDegree returns the vertices of g by descending degree, ties by ascending id.
// Complexity: O(n log n).
func ByDegree(g *adjacency.Sparse) []int {
	out := Natural(g.Order())
	slices.SortStableFunc(out, func(a, b int) int { return g.Degree(b) - g.Degree(a) })

	return out
}

// ListingOrder returns rank[v], the position of v in the degeneracy order.
func ListingOrder(g *adjacency.Sparse) []int {
	return Ranks(Degeneracy(g).Order)
}

// Ranks inverts a permutation: Ranks(order)[order[i]] == i.
func Ranks(order []int) []int {
	rank := make([]int, len(order))
	for i, v := range order {
		rank[v] = i
	}

	return rank
}

// For computes the order named by kind for g.
func For(kind Kind, g *adjacency.Sparse) ([]int, error) {
	switch kind {
	case KindNatural:
		return Natural(g.Order()), nil
	case KindDegree:
		return ByDegree(g), nil
	case KindDegeneracy:
		return Degeneracy(g).Order, nil
	default:
		return nil, fmt.Errorf("ordering: %q: %w", kind, ErrUnknownKind)
	}
}
