package graphio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/graphio"
)

func TestFromGonum_Renumbers(t *testing.T) {
	ug := simple.NewUndirectedGraph()
	ug.SetEdge(simple.Edge{F: simple.Node(40), T: simple.Node(10)})
	ug.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(25)})
	ug.AddNode(simple.Node(99))

	g, ids, err := graphio.FromGonum(ug)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 25, 40, 99}, ids)
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(3))
}

func TestGonum_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 4), builder.Star(5))
	require.NoError(t, err)

	back, ids, err := graphio.FromGonum(graphio.ToGonum(g))
	require.NoError(t, err)
	assert.Len(t, ids, g.Order())
	assertSameGraph(t, g, back)
}
