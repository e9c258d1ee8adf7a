// Package shortestpath implements the three classic shortest-path algorithms
// on a weighted graph.Graph.
//
// Overview:
//
//   - Dijkstra(g, source): single-source distances for non-negative weights.
//     Uses a min-heap with the lazy decrease-key strategy: improved distances
//     push duplicate heap entries, and stale entries are skipped when popped.
//     Time O((V+E) log V), space O(V+E).
//   - BellmanFord(g, source): single-source distances with negative weights
//     allowed. |V|−1 relaxation rounds plus one detection round; a further
//     improvement in the detection round proves a reachable negative cycle
//     (ErrNegativeCycle). Time O(V·E), space O(V).
//   - FloydWarshall(g): all-pairs distances via the triple loop over
//     intermediate vertices. Time O(V³), space O(V²).
//
// Unreachable vertices carry the distance Inf (math.MaxInt64). Predecessor
// maps allow path reconstruction through Result.PathTo.
//
// Errors (sentinel):
//
//   - ErrNilGraph        nil *graph.Graph.
//   - ErrUnweightedGraph graph not built with graph.WithWeighted().
//   - ErrSourceNotFound  source vertex absent from the graph.
//   - ErrNegativeWeight  Dijkstra's O(E) pre-scan found a negative edge.
//   - ErrNegativeCycle   BellmanFord or FloydWarshall found a negative cycle.
package shortestpath
