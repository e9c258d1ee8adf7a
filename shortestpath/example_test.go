package shortestpath_test

import (
	"fmt"

	"github.com/katalvlaran/algopack/graph"
	"github.com/katalvlaran/algopack/shortestpath"
)

// ExampleDijkstra computes distances on a triangle where the two-hop route
// beats the direct edge.
func ExampleDijkstra() {
	g := graph.New(graph.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	res, err := shortestpath.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%d dist[B]=%d dist[C]=%d\n", res.Dist["A"], res.Dist["B"], res.Dist["C"])
	path, _ := res.PathTo("C")
	fmt.Println("path:", path)
	// Output:
	// dist[A]=0 dist[B]=1 dist[C]=3
	// path: [A B C]
}

// ExampleBellmanFord handles a negative edge that Dijkstra must reject.
func ExampleBellmanFord() {
	g := graph.New(graph.WithWeighted(), graph.WithDirected())
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", -3)

	res, err := shortestpath.BellmanFord(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[B]=%d via %s\n", res.Dist["B"], res.Prev["B"])
	// Output: dist[B]=-1 via C
}
