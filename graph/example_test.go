package graph_test

import (
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// ExampleGraph builds a small weighted square and lists its vertices and the
// neighborhood of one corner.
//
//	A───B
//	│   │
//	C───D
func ExampleGraph() {
	g := graph.New(graph.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 4)

	fmt.Println(g.Vertices())
	nbrs, _ := g.Neighbors("D")
	for _, e := range nbrs {
		fmt.Printf("%s→%s w=%d\n", e.From, e.To, e.Weight)
	}
	// Output:
	// [A B C D]
	// D→B w=3
	// D→C w=4
}
