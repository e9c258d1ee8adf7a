// Package sorting provides reference implementations of the classic
// comparison sorts plus counting sort, each returning a freshly sorted copy
// of its input.
//
// Overview:
//
//   - Merge: stable top-down merge sort. O(n log n) time, O(n) space.
//   - Quick: randomized-pivot quicksort (Lomuto partition on a copy).
//     Expected O(n log n) time, O(log n) stack, not stable.
//   - Heap: binary-heap selection sort. O(n log n) time, O(1) extra beyond
//     the copy, not stable.
//   - Counting(values, maxValue): distribution sort for ints in
//     [0, maxValue]. O(n + maxValue) time and space, stable by construction.
//
// The comparison sorts are generic over cmp.Ordered. Inputs are never
// mutated: every function copies first, honoring the read-only contract the
// rest of this repository keeps for algorithm inputs.
//
// Errors (sentinel, Counting only):
//
//   - ErrBadMaxValue     maxValue < 0.
//   - ErrValueOutOfRange a value outside [0, maxValue].
package sorting
