// Package maxflow implements the Edmonds–Karp maximum-flow algorithm on a
// directed, weighted graph.Graph whose edge weights act as capacities.
//
// Overview:
//
//   - EdmondsKarp(g, source, sink) repeatedly finds the shortest augmenting
//     path (by edge count) with BFS over the residual network and pushes the
//     bottleneck capacity along it. With BFS ordering the number of
//     augmentations is bounded by O(V·E), giving O(V·E²) total time.
//   - Parallel edges between a pair of vertices are merged by summing their
//     capacities; the result reports per-arc flow on the merged network.
//
// The value returned equals the capacity of a minimum source/sink cut
// (max-flow min-cut theorem), which the tests exploit.
//
// Errors (sentinel):
//
//   - ErrNilGraph         nil *graph.Graph.
//   - ErrNotDirected      flow networks are directed by definition here.
//   - ErrVertexNotFound   source or sink absent from the graph.
//   - ErrSameSourceSink   source == sink.
//   - ErrNegativeCapacity an edge with negative weight.
package maxflow
