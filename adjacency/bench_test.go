package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/lvclique/adjacency"
)

// BenchmarkIntersectSorted measures the merge walk on two interleaved 10k-element sets.
func BenchmarkIntersectSorted(b *testing.B) {
	a := make([]int, 0, 10000)
	c := make([]int, 0, 10000)
	for i := 0; i < 10000; i++ {
		a = append(a, 2*i)
		c = append(c, 3*i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjacency.IntersectSorted(a, c)
	}
}

// BenchmarkSparseConnected measures binary-search adjacency on a 2000-vertex star.
func BenchmarkSparseConnected(b *testing.B) {
	edges := make([]adjacency.Edge, 0, 1999)
	for v := 1; v < 2000; v++ {
		edges = append(edges, adjacency.Edge{U: 0, V: v})
	}
	s, err := adjacency.NewSparse(2000, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Connected(0, i%2000)
	}
}
