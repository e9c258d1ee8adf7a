// Package dsu implements the disjoint-set union (union-find) structure with
// path compression and union by rank.
//
// Overview:
//
//   - A DSU partitions the integers 0..n-1 into disjoint sets.
//   - Find returns a canonical representative for an element's set.
//   - Union merges two sets and reports whether a merge happened.
//   - Same answers connectivity queries; Count tracks the number of sets.
//
// With both optimizations enabled, a sequence of m operations on n elements
// runs in O(m·α(n)), where α is the inverse Ackermann function, effectively
// constant for any practical n.
//
// Errors (sentinel):
//
//   - ErrBadSize          if New is called with n < 0.
//   - ErrIndexOutOfRange  if an element index is outside [0, n).
//
// Example:
//
//	d, _ := dsu.New(5)
//	d.Union(0, 1)
//	d.Union(3, 4)
//	same, _ := d.Same(1, 0) // true
//	fmt.Println(same, d.Count()) // true 3
package dsu
