// Package graph provides the minimal adjacency-list graph used as input by
// the algorithm packages in this repository.
//
// Overview:
//
//   - A Graph holds string vertex IDs and int64-weighted edges.
//   - Directedness, weightedness, and self-loop support are fixed per graph
//     at construction time via functional options.
//   - All iteration orders are deterministic: Vertices returns IDs sorted
//     ascending, and Neighbors returns edges sorted by (To, Weight).
//
// The type is deliberately small. It is an input container, not a component:
// there is no locking, no cloning machinery, and no state that survives past
// the function call consuming it. Algorithms treat a Graph as read-only.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID  if a vertex ID is the empty string.
//   - ErrVertexNotFound if an operation references a missing vertex.
//   - ErrBadWeight      if a non-zero weight is given to an unweighted graph.
//   - ErrSelfLoop       if a self-loop is added while loops are disabled.
//
// Example:
//
//	g := graph.New(graph.WithWeighted())
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("B", "C", 2)
//	fmt.Println(g.Vertices()) // [A B C]
package graph
