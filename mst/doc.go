// Package mst computes minimum spanning trees of connected, undirected,
// weighted graphs with Kruskal's and Prim's algorithms.
//
// Overview:
//
//   - Kruskal(g): sort all edges by weight, then greedily take every edge
//     that joins two different components, tracked by a disjoint-set union.
//     Time O(E log E), space O(V + E).
//   - Prim(g): grow the tree from the smallest vertex ID, always taking the
//     lightest edge leaving the tree, via a min-heap with lazy deletion.
//     Time O(E log V), space O(V + E).
//
// Both return the MST edge set together with its total weight. For a given
// graph with distinct edge weights the two results are identical; with ties
// the trees may differ but the total weight never does.
//
// Errors (sentinel):
//
//   - ErrNilGraph        nil *graph.Graph.
//   - ErrDirectedGraph   MST is defined on undirected graphs only.
//   - ErrUnweightedGraph graph not built with graph.WithWeighted().
//   - ErrDisconnected    no spanning tree exists (also for |V| == 0).
package mst
