package ordering_test

import (
	"testing"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/ordering"
)

// BenchmarkDegeneracy_Sparse10k measures peeling on G(10000, 0.001).
func BenchmarkDegeneracy_Sparse10k(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(10000, 0.001))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ordering.Degeneracy(g)
	}
}
