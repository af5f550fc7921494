package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvclique/builder"
)

// ExampleBuildGraph composes two triangles joined by nothing: a disjoint union.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Order(), g.EdgeCount())
	fmt.Println(g.Neighbors(4))
	// Output:
	// 6 6
	// [3 5]
}
