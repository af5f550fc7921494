package graphio

import (
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvclique/adjacency"
)

// ToGonum copies g into a gonum simple.UndirectedGraph; vertex v becomes
// node ID v.
func ToGonum(g *adjacency.Sparse) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return ug
}

// FromGonum copies an undirected gonum graph. Node IDs are sorted ascending
// and renumbered 0..n-1; ids[v] is the original ID of vertex v.
func FromGonum(g graph.Undirected) (s *adjacency.Sparse, ids []int64, err error) {
	for _, nd := range graph.NodesOf(g.Nodes()) {
		ids = append(ids, nd.ID())
	}
	slices.Sort(ids)

	index := make(map[int64]int, len(ids))
	for v, id := range ids {
		index[id] = v
	}

	var edges []adjacency.Edge
	for u, id := range ids {
		to := g.From(id)
		for to.Next() {
			if v := index[to.Node().ID()]; u < v {
				edges = append(edges, adjacency.Edge{U: u, V: v})
			}
		}
	}

	if s, err = adjacency.NewSparse(len(ids), edges); err != nil {
		return nil, nil, errors.Wrap(err, "graphio: build adjacency")
	}

	return s, ids, nil
}
