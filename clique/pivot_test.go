package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/adjacency"
	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
)

func TestChoosePivot(t *testing.T) {
	path := build(t, builder.Path(3))
	tri := build(t, builder.Complete(3))

	cases := []struct {
		name string
		g    *adjacency.Sparse
		p, x []int
		want int
	}{
		{"middle of path", path, []int{0, 1, 2}, nil, 1},
		{"tie resolves to first in P", tri, []int{0, 1, 2}, nil, 0},
		{"X wins when strictly better", path, []int{0, 2}, []int{1}, 1},
		{"X loses ties to P", path, []int{0}, []int{2}, 0},
		{"only X", path, nil, []int{2}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := clique.ChoosePivot(tc.g, tc.p, tc.x)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			d, err := adjacency.DenseFromSparse(tc.g)
			require.NoError(t, err)
			got, err = clique.ChoosePivotDense(d, adjacency.MaskOf(tc.p...), adjacency.MaskOf(tc.x...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "dense")
		})
	}
}

func TestChoosePivot_Empty(t *testing.T) {
	g := build(t, builder.Path(2))
	_, err := clique.ChoosePivot(g, nil, nil)
	assert.ErrorIs(t, err, clique.ErrEmptyCandidates)

	d, err := adjacency.DenseFromSparse(g)
	require.NoError(t, err)
	_, err = clique.ChoosePivotDense(d, 0, 0)
	assert.ErrorIs(t, err, clique.ErrEmptyCandidates)
}
