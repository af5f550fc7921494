package ordering_test

import (
	"fmt"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/ordering"
)

// ExampleDegeneracy peels a triangle with a pendant vertex: the pendant goes
// first (core 1), the triangle forms the 2-core.
func ExampleDegeneracy() {
	g, _ := builder.BuildGraph(nil, builder.Edges(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{2, 3}))

	dec := ordering.Degeneracy(g)
	fmt.Println("degeneracy:", dec.Degeneracy)
	fmt.Println("core:", dec.Core)
	fmt.Println("peel:", dec.Peel)
	// Output:
	// degeneracy: 2
	// core: [2 2 2 1]
	// peel: [3 0 1 2]
}
