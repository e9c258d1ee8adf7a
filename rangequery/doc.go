// Package rangequery provides the two classic static/range-query structures:
// the Fenwick tree (binary indexed tree) for prefix sums under point
// updates, and the sparse table for O(1) range-minimum queries over
// immutable data.
//
// Overview:
//
//   - Fenwick: NewFenwick(n) builds an all-zero tree over indices 0..n-1.
//     Add(i, delta) and PrefixSum(i) both walk the low-bit chain in
//     O(log n); RangeSum(l, r) is the difference of two prefix sums.
//   - SparseTable: NewSparseTable(values) precomputes minima of every
//     power-of-two window in O(n log n); RangeMin(l, r) answers any
//     inclusive range by overlapping two windows, exploiting that min is
//     idempotent.
//
// Ranges are inclusive on both ends and 0-based throughout.
//
// Errors (sentinel):
//
//   - ErrBadSize         NewFenwick with n < 0.
//   - ErrEmptyInput      NewSparseTable with no values.
//   - ErrIndexOutOfRange index outside [0, n).
//   - ErrBadRange        query with l > r or a bound outside [0, n).
package rangequery
