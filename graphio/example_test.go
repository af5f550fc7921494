package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvclique/graphio"
)

func ExampleReadText() {
	in := "3 3\n0 1 2\n1 2\n"
	g, err := graphio.ReadText(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = graphio.WriteText(os.Stdout, g)
	// Output:
	// 3 3
	// 0 1 2
	// 1 0 2
	// 2 0 1
}
