package sorting

import (
	"cmp"
	"errors"
	"math/rand"
)

// Sentinel errors for Counting.
var (
	// ErrBadMaxValue indicates a negative maxValue.
	ErrBadMaxValue = errors.New("sorting: maxValue must be non-negative")

	// ErrValueOutOfRange indicates an input value outside [0, maxValue].
	ErrValueOutOfRange = errors.New("sorting: value out of range")
)

// Merge returns a sorted copy of values using stable top-down merge sort.
//
// Complexity: O(n log n) time, O(n) space.
func Merge[T cmp.Ordered](values []T) []T {
	out := append([]T(nil), values...)
	if len(out) < 2 {
		return out
	}

	// Split, sort halves, merge back.
	mid := len(out) / 2
	left := Merge(out[:mid])
	right := Merge(out[mid:])

	i, j := 0, 0
	for k := range out {
		switch {
		case i == len(left):
			out[k] = right[j]
			j++
		case j == len(right):
			out[k] = left[i]
			i++
		case right[j] < left[i]: // strict: keeps equal elements stable
			out[k] = right[j]
			j++
		default:
			out[k] = left[i]
			i++
		}
	}

	return out
}

// Quick returns a sorted copy of values using quicksort with a uniformly
// random pivot, which keeps the expected depth logarithmic on any input.
//
// Complexity: expected O(n log n) time, O(log n) stack; not stable.
func Quick[T cmp.Ordered](values []T) []T {
	out := append([]T(nil), values...)
	quicksort(out)

	return out
}

// quicksort sorts s in place via Lomuto partitioning around a random pivot.
func quicksort[T cmp.Ordered](s []T) {
	if len(s) < 2 {
		return
	}

	// Move a random pivot to the end, then partition.
	p := rand.Intn(len(s))
	last := len(s) - 1
	s[p], s[last] = s[last], s[p]

	store := 0
	for i := 0; i < last; i++ {
		if s[i] < s[last] {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[last] = s[last], s[store]

	quicksort(s[:store])
	quicksort(s[store+1:])
}

// Heap returns a sorted copy of values using in-place heapsort: build a max-
// heap, then repeatedly swap the root behind the shrinking heap boundary.
//
// Complexity: O(n log n) time, O(1) extra space beyond the copy; not stable.
func Heap[T cmp.Ordered](values []T) []T {
	out := append([]T(nil), values...)
	n := len(out)

	// Heapify bottom-up from the last internal node.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, i, n)
	}
	// Extract the maximum n−1 times.
	for end := n - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		siftDown(out, 0, end)
	}

	return out
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only s[:size].
func siftDown[T cmp.Ordered](s []T, i, size int) {
	for {
		largest := i
		if l := 2*i + 1; l < size && s[largest] < s[l] {
			largest = l
		}
		if r := 2*i + 2; r < size && s[largest] < s[r] {
			largest = r
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

// Counting returns a sorted copy of values, all of which must lie in
// [0, maxValue]. Position accumulation makes the sort stable.
//
// Complexity: O(n + maxValue) time and space.
func Counting(values []int, maxValue int) ([]int, error) {
	if maxValue < 0 {
		return nil, ErrBadMaxValue
	}

	// 1) Count occurrences, validating the range on the way.
	counts := make([]int, maxValue+1)
	for _, v := range values {
		if v < 0 || v > maxValue {
			return nil, ErrValueOutOfRange
		}
		counts[v]++
	}

	// 2) Prefix-sum the counts into start positions.
	total := 0
	for v, c := range counts {
		counts[v] = total
		total += c
	}

	// 3) Scatter each value to its slot in input order.
	out := make([]int, len(values))
	for _, v := range values {
		out[counts[v]] = v
		counts[v]++
	}

	return out, nil
}
