package ordering_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvclique/adjacency"
	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/graphio"
	"github.com/katalvlaran/lvclique/ordering"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *adjacency.Sparse {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)

	return g
}

func TestDegeneracy_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		g    *adjacency.Sparse
		want int
	}{
		{"empty", build(t, nil), 0},
		{"isolated", build(t, nil, builder.Empty(4)), 0},
		{"path", build(t, nil, builder.Path(6)), 1},
		{"cycle", build(t, nil, builder.Cycle(6)), 2},
		{"K5", build(t, nil, builder.Complete(5)), 4},
		{"wheel", build(t, nil, builder.Wheel(8)), 3},
		{"K5 plus star", build(t, nil, builder.Complete(5), builder.Star(10)), 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec := ordering.Degeneracy(tc.g)
			assert.Equal(t, tc.want, dec.Degeneracy)
			assert.Len(t, dec.Peel, tc.g.Order())
			assertPermutation(t, dec.Order)

			rev := slices.Clone(dec.Peel)
			slices.Reverse(rev)
			assert.Equal(t, rev, dec.Order)
		})
	}
}

// TestDegeneracy_PeelInvariant checks the defining property: when a vertex is
// peeled, it has at most core(v) neighbors that are still present, and core
// numbers never decrease along the peel sequence.
func TestDegeneracy_PeelInvariant(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(200, 0.05))
	dec := ordering.Degeneracy(g)

	removed := make([]bool, g.Order())
	prev := 0
	for _, v := range dec.Peel {
		later := 0
		for _, u := range g.Neighbors(v) {
			if !removed[u] {
				later++
			}
		}
		assert.LessOrEqual(t, later, dec.Core[v], "vertex %d", v)
		assert.GreaterOrEqual(t, dec.Core[v], prev)
		prev = dec.Core[v]
		removed[v] = true
	}
}

// TestKCore_Gonum compares k-cores with gonum's topo.KCore.
func TestKCore_Gonum(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(120, 0.08), builder.Complete(7))

	ug := graphio.ToGonum(g)

	dec := ordering.Degeneracy(g)
	for k := 0; k <= dec.Degeneracy; k++ {
		var want []int
		for _, nd := range topo.KCore(k, ug) {
			want = append(want, int(nd.ID()))
		}
		slices.Sort(want)
		assert.Equal(t, want, ordering.KCore(g, k), "k=%d", k)
	}
}

// TestKCore_MatchesPeel checks KCore against the core numbers of Degeneracy
// and covers k outside 0..degeneracy.
func TestKCore_MatchesPeel(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(60, 0.1), builder.Complete(6), builder.Empty(2))
	dec := ordering.Degeneracy(g)

	for k := 0; k <= dec.Degeneracy; k++ {
		var want []int
		for v, c := range dec.Core {
			if c >= k {
				want = append(want, v)
			}
		}
		assert.Equal(t, want, ordering.KCore(g, k), "k=%d", k)
	}

	assert.Len(t, ordering.KCore(g, -1), g.Order())
	assert.Empty(t, ordering.KCore(g, dec.Degeneracy+1))
	assert.Empty(t, ordering.KCore(g, 1000))
	assert.Empty(t, ordering.KCore(build(t, nil), 0))
}

// TestDegeneracy_Reproducible reruns the peel; orders must be identical.
func TestDegeneracy_Reproducible(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(80, 0.1))
	first := ordering.Degeneracy(g)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ordering.Degeneracy(g))
	}
}

func TestByDegree(t *testing.T) {
	g := build(t, nil, builder.Path(3), builder.Star(4))
	// degrees: 0:1 1:2 2:1 3:3 4:1 5:1 6:1
	assert.Equal(t, []int{3, 1, 0, 2, 4, 5, 6}, ordering.ByDegree(g))
}

func TestListingOrderAndRanks(t *testing.T) {
	g := build(t, nil, builder.Complete(4), builder.Path(3))
	rank := ordering.ListingOrder(g)
	order := ordering.Degeneracy(g).Order
	for i, v := range order {
		assert.Equal(t, i, rank[v])
	}
	// the K4 vertices (core 3) come before the path (core 1)
	for v := 0; v < 4; v++ {
		assert.Less(t, rank[v], 4)
	}
}

func TestFor(t *testing.T) {
	g := build(t, nil, builder.Star(5))
	for _, name := range []string{"natural", "Degree", " degeneracy "} {
		kind, err := ordering.ParseKind(name)
		require.NoError(t, err)
		order, err := ordering.For(kind, g)
		require.NoError(t, err)
		assertPermutation(t, order)
	}

	_, err := ordering.ParseKind("random")
	assert.ErrorIs(t, err, ordering.ErrUnknownKind)
	_, err = ordering.For(ordering.Kind("x"), g)
	assert.ErrorIs(t, err, ordering.ErrUnknownKind)

	assert.Equal(t, []int{0, 1, 2}, ordering.Natural(3))
	assert.Empty(t, ordering.Natural(-1))
}

func assertPermutation(t *testing.T, order []int) {
	t.Helper()
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	assert.Equal(t, ordering.Natural(len(order)), sorted)
}
