// Package traversal implements breadth-first and depth-first search over a
// graph.Graph, plus the two classic DFS applications: topological sort and
// cycle detection.
//
// Overview:
//
//   - BFS(g, start): visits vertices in increasing edge-distance from start,
//     recording visit order, depth, and parent links. On an unweighted graph
//     the depth map is the shortest-path distance, and Result.PathTo rebuilds
//     a shortest path.
//   - DFS(g, start): explores as deep as possible before backtracking,
//     recording preorder, post-order, depth, and parent links.
//   - Topological(g): linear order of a directed acyclic graph such that
//     every edge u→v has u before v. Cycles yield ErrCycle.
//   - HasCycle(g): three-color detection on directed graphs; parent-skip
//     detection on undirected graphs.
//
// All traversals iterate neighbors in the deterministic order provided by
// graph.Neighbors, so results are reproducible for a given graph.
//
// Complexity: O(V + E) time and O(V) auxiliary memory for every entry point.
//
// Options (BFS and DFS):
//
//   - WithMaxDepth(d):       do not explore past depth d (d ≥ 0; 0 = start only).
//   - WithOnVisit(fn):       hook invoked per visited vertex; an error aborts.
//   - WithFilterNeighbor(fn) skip an edge when fn(from, to) returns false.
//
// Errors (sentinel):
//
//   - ErrNilGraph       nil *graph.Graph.
//   - ErrStartNotFound  start vertex absent from the graph.
//   - ErrNotDirected    Topological on an undirected graph.
//   - ErrCycle          Topological on a cyclic graph.
//   - ErrBadMaxDepth    WithMaxDepth given a negative value (panics: an
//     impossible option is a programming error, not an input error).
package traversal
