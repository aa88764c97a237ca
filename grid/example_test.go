// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/RichTGale/astar/grid"
)

// ExampleNew builds a 2×2×1 Manhattan grid and prints each node with its
// out-degree. Interior nodes of a 2×2 layer touch two neighbors each.
func ExampleNew() {
	g, _ := grid.New(2, 2, 1, grid.Manhattan)
	for i := 0; i < g.Len(); i++ {
		n, _ := g.NodeAt(i)
		fmt.Printf("%s degree=%d\n", n, len(n.Edges()))
	}

	// Output:
	// (0,0,0) degree=2
	// (0,1,0) degree=2
	// (1,0,0) degree=2
	// (1,1,0) degree=2
}

// ExampleGraph_String renders a 2×2×1 grid with one impassable cell.
func ExampleGraph_String() {
	g, _ := grid.New(2, 2, 1, grid.Manhattan,
		grid.WithWeights([]int64{1, 1, 0, 1}))
	fmt.Print(g)

	// Output:
	// Graph 2×2×1 (Manhattan)
	// z=0:
	// 1 0
	// 1 1
}
