package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/clique"
)

func TestOrderState_Reorder(t *testing.T) {
	st, err := clique.NewOrderState(5, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, st.Order())
	assert.Equal(t, 5, st.Len())

	st.ReorderAfterClique([]int{3, 1})
	assert.Equal(t, []int{0, 2, 4, 1, 3}, st.Order())
	assert.True(t, st.Covered(1))
	assert.False(t, st.Covered(0))
	assert.Equal(t, 2, st.CoveredCount())

	// covered vertices keep their relative order at the back
	st.ReorderAfterClique([]int{0})
	assert.Equal(t, []int{2, 4, 0, 1, 3}, st.Order())
	assert.Equal(t, 2, st.Position(0))
	assert.Equal(t, 4, st.At(1))
	assert.Equal(t, 3, st.CoveredCount())

	// repeats and out-of-range ids are ignored
	st.ReorderAfterClique([]int{0, 7, -1})
	assert.Equal(t, 3, st.CoveredCount())
	assert.Equal(t, -1, st.Position(7))
}

func TestOrderState_OrderedCandidates(t *testing.T) {
	st, err := clique.NewOrderState(6, []int{5, 4, 3, 2, 1, 0})
	require.NoError(t, err)

	p := []int{0, 2, 3, 5}
	assert.Equal(t, []int{5, 3, 2, 0}, st.OrderedCandidates(p))
	assert.Equal(t, []int{0, 2, 3, 5}, p, "input untouched")

	st.ReorderAfterClique([]int{3})
	assert.Equal(t, []int{5, 2, 0}, st.OrderedCandidates(p))
}

func TestOrderState_OrderIsCopy(t *testing.T) {
	st, err := clique.NewOrderState(3, nil)
	require.NoError(t, err)
	o := st.Order()
	o[0] = 2
	assert.Equal(t, 0, st.At(0))
}

func TestOrderState_InvalidSeed(t *testing.T) {
	for _, seed := range [][]int{{0, 1}, {0, 1, 1}, {0, 1, 3}, {-1, 0, 1}} {
		_, err := clique.NewOrderState(3, seed)
		assert.ErrorIs(t, err, clique.ErrInvalidOrder, "seed %v", seed)
	}
}
