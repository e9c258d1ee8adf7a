// Package algopack is a study collection of classic algorithms and data
// structures, one package per family, written as independent, deterministic,
// in-memory reference implementations.
//
// 🚀 What is algopack?
//
//	A catalogue of textbook techniques with the published semantics and
//	literal published examples in the tests:
//		• graph/        — the shared adjacency-list input type
//		• traversal/    — BFS, DFS, topological sort, cycle detection
//		• shortestpath/ — Dijkstra, Bellman–Ford, Floyd–Warshall
//		• mst/          — Kruskal, Prim
//		• maxflow/      — Edmonds–Karp
//		• dsu/          — disjoint-set union (path compression + rank)
//		• stringsearch/ — prefix function/KMP, Z-function, Rabin–Karp
//		• sorting/      — merge, quick, heap, counting
//		• numtheory/    — gcd/extgcd, binary power, inverses, sieve
//		• rangequery/   — Fenwick tree, sparse table
//		• sequence/     — longest common/increasing subsequence
//
// ✨ Design rules
//
//   - Every entry point is a pure function or a small value type: fixed
//     input in, deterministic output out, nothing shared, nothing retained.
//   - Malformed input is the only failure mode, reported through sentinel
//     errors named in each package's doc.go.
//   - Iteration orders are deterministic everywhere (sorted vertex IDs,
//     stable sorts), so every documented example output is exact.
//
// There is no unified API, no CLI, and no service surface: each package is
// independently importable and independently tested; the tests double as
// worked examples of each algorithm's contract.
package algopack
