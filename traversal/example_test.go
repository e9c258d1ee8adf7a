package traversal_test

import (
	"fmt"

	"github.com/katalvlaran/algopack/graph"
	"github.com/katalvlaran/algopack/traversal"
)

// ExampleBFS walks a square graph level by level and rebuilds the shortest
// path to the far corner.
//
//	A───B
//	│   │
//	C───D
func ExampleBFS() {
	g := graph.New()
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "C", 0)
	g.AddEdge("B", "D", 0)
	g.AddEdge("C", "D", 0)

	res, err := traversal.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", res.Order)
	path, _ := res.PathTo("D")
	fmt.Println("path: ", path)
	// Output:
	// order: [A B C D]
	// path:  [A B D]
}

// ExampleTopological orders the stages of a tiny build pipeline.
func ExampleTopological() {
	g := graph.New(graph.WithDirected())
	g.AddEdge("compile", "test", 0)
	g.AddEdge("test", "package", 0)
	g.AddEdge("compile", "lint", 0)

	order, err := traversal.Topological(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [compile test package lint]
}
