package clique_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvclique/adjacency"
	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/graphio"
)

// build assembles a fixture or fails the test.
func build(t testing.TB, cons ...builder.Constructor) *adjacency.Sparse {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

// buildSeeded assembles a stochastic fixture with a fixed seed.
func buildSeeded(t testing.TB, seed int64, cons ...builder.Constructor) *adjacency.Sparse {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
	require.NoError(t, err)

	return g
}

// bruteForce enumerates every vertex subset of g (n ≤ 12) and keeps the
// maximal cliques, sorted lexicographically.
func bruteForce(t testing.TB, g *adjacency.Sparse) [][]int {
	t.Helper()
	n := g.Order()
	require.LessOrEqual(t, n, 12, "brute force is limited to n ≤ 12")

	isClique := func(set uint) bool {
		for u := 0; u < n; u++ {
			if set&(1<<u) == 0 {
				continue
			}
			for v := u + 1; v < n; v++ {
				if set&(1<<v) != 0 && !g.Connected(u, v) {
					return false
				}
			}
		}
		return true
	}

	var out [][]int
	for set := uint(1); set < 1<<n; set++ {
		if !isClique(set) {
			continue
		}
		maximal := true
		for w := 0; w < n && maximal; w++ {
			if set&(1<<w) == 0 && isClique(set|1<<w) {
				maximal = false
			}
		}
		if !maximal {
			continue
		}
		var c []int
		for v := 0; v < n; v++ {
			if set&(1<<v) != 0 {
				c = append(c, v)
			}
		}
		out = append(out, c)
	}
	slices.SortFunc(out, slices.Compare[[]int])

	return out
}

// gonumCliques runs gonum's Bron–Kerbosch over the same graph, as an
// independent oracle for graphs too large for bruteForce.
func gonumCliques(g *adjacency.Sparse) [][]int {
	var out [][]int
	for _, nodes := range topo.BronKerbosch(graphio.ToGonum(g)) {
		c := make([]int, 0, len(nodes))
		for _, nd := range nodes {
			c = append(c, int(nd.ID()))
		}
		slices.Sort(c)
		out = append(out, c)
	}
	slices.SortFunc(out, slices.Compare[[]int])

	return out
}
