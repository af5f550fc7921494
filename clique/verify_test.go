package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
)

func TestIsCliqueAndIsMaximal(t *testing.T) {
	g := build(t, builder.Wheel(5)) // rim 0-1-2-3, hub 4

	assert.True(t, clique.IsClique(g, []int{0, 1, 4}))
	assert.True(t, clique.IsMaximal(g, []int{4, 1, 0}))
	assert.True(t, clique.IsClique(g, []int{0, 4}))
	assert.False(t, clique.IsMaximal(g, []int{0, 4}), "extends by 1 or 3")
	assert.False(t, clique.IsClique(g, []int{0, 2}))
	assert.False(t, clique.IsClique(g, nil))
	assert.False(t, clique.IsClique(g, []int{0, 9}))
	assert.False(t, clique.IsClique(g, []int{1, 1}))
	assert.False(t, clique.IsClique(nil, []int{0}))
}

func TestMissing(t *testing.T) {
	ref := [][]int{{0, 1}, {2, 1}, {2, 3}}
	got := [][]int{{1, 0}, {1, 2}}

	assert.Equal(t, [][]int{{2, 3}}, clique.Missing(ref, got))
	assert.Nil(t, clique.Missing(got, ref))
}
