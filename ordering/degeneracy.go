package ordering

import (
	"slices"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvclique/adjacency"
	"github.com/katalvlaran/lvclique/graphio"
)

// Degeneracy peels g by repeatedly removing a vertex of minimum remaining
// degree. Vertices are bucketed by degree; inside a bucket the smallest id is
// placed first, so the result is deterministic. topo.DegeneracyOrdering pops
// ties in node-map order and gives a different order on every call, which would
// make listing orders built from it unreproducible.
//
// Steps:
//  1. Bucket vertices by degree (counting sort).
//  2. Walk the sorted array; the current vertex v is removed with core = deg(v).
//  3. Every neighbor u with deg(u) > deg(v) moves to the front of its bucket and
//     its degree drops by one.
//
// Complexity: O(n + m).
func Degeneracy(g *adjacency.Sparse) Decomposition {
	n := g.Order()
	dec := Decomposition{
		Peel:  make([]int, n),
		Order: make([]int, n),
		Core:  make([]int, n),
	}
	if n == 0 {
		return dec
	}

	// 1. Counting sort by degree
	maxDeg := g.MaxDegree()
	deg := make([]int, n)
	start := make([]int, maxDeg+1) // first slot of each degree bucket
	for v := 0; v < n; v++ {
		deg[v] = g.Degree(v)
		start[deg[v]]++
	}
	for d, sum := 0, 0; d <= maxDeg; d++ {
		cnt := start[d]
		start[d] = sum
		sum += cnt
	}

	pos := make([]int, n)
	vert := make([]int, n)
	next := append([]int(nil), start...)
	for v := 0; v < n; v++ {
		pos[v] = next[deg[v]]
		vert[pos[v]] = v
		next[deg[v]]++
	}

	// 2-3. Peel
	for i := 0; i < n; i++ {
		v := vert[i]
		dec.Core[v] = deg[v]
		dec.Peel[i] = v
		dec.Order[n-1-i] = v
		if deg[v] > dec.Degeneracy {
			dec.Degeneracy = deg[v]
		}

		for _, u := range g.Neighbors(v) {
			if deg[u] <= deg[v] {
				continue
			}
			du, pu := deg[u], pos[u]
			pw := start[du]
			w := vert[pw]
			if u != w {
				vert[pu], vert[pw] = w, u
				pos[w], pos[u] = pu, pw
			}
			start[du]++
			deg[u]--
		}
	}

	return dec
}

// KCore returns the ascending ids of vertices whose core number is at least k.
// The cores come from topo.DegeneracyOrdering; only their membership is used,
// so its tie order does not leak into the result.
func KCore(g *adjacency.Sparse, k int) []int {
	_, cores := topo.DegeneracyOrdering(graphio.ToGonum(g))

	// cores[i] holds the vertices of core number exactly i
	var out []int
	for _, core := range cores[min(max(k, 0), len(cores)):] {
		for _, nd := range core {
			out = append(out, int(nd.ID()))
		}
	}
	slices.Sort(out)

	return out
}
