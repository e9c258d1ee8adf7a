package sequence

import "sort"

// LIS returns one longest strictly increasing subsequence of values.
//
// Patience technique: tailIndex[k] is the index of the smallest tail among
// all increasing subsequences of length k+1 seen so far. Each element either
// extends the longest pile or replaces the first tail not smaller than it,
// found by binary search. Predecessor links recover a witness at the end.
//
// Complexity: O(n log n) time, O(n) space.
func LIS(values []int) []int {
	if len(values) == 0 {
		return []int{}
	}

	tailIndex := make([]int, 0, len(values))
	prev := make([]int, len(values))

	for i, v := range values {
		// First pile whose tail is ≥ v; strict increase forbids equal tails.
		pile := sort.Search(len(tailIndex), func(k int) bool {
			return values[tailIndex[k]] >= v
		})

		if pile > 0 {
			prev[i] = tailIndex[pile-1]
		} else {
			prev[i] = -1
		}
		if pile == len(tailIndex) {
			tailIndex = append(tailIndex, i)
		} else {
			tailIndex[pile] = i
		}
	}

	// Walk predecessor links back from the tail of the longest pile.
	out := make([]int, len(tailIndex))
	for i, at := len(out)-1, tailIndex[len(tailIndex)-1]; at >= 0; i, at = i-1, prev[at] {
		out[i] = values[at]
	}

	return out
}
