package stringsearch

import "strings"

// ZFunction computes the Z-array of s.
//
// z[i] is the length of the longest common prefix of s and the suffix
// starting at i; z[0] is 0 by convention. The [l, r) window of the rightmost
// known match segment makes the construction linear.
//
// Complexity: O(|s|) time, O(|s|) space.
func ZFunction(s string) []int {
	n := len(s)
	z := make([]int, n)

	l, r := 0, 0
	for i := 1; i < n; i++ {
		// Reuse the part of a previous match that covers position i.
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		// Extend the match naively past the window.
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		// Push the window right if this match ends further out.
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}

	return z
}

// FindZ returns the 0-based positions of every occurrence of pattern in
// text via the Z-array of pattern + "#" + text. Contract identical to Find.
//
// Complexity: O(|text| + |pattern|) time and space.
func FindZ(text, pattern string) ([]int, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if strings.Contains(text, separator) || strings.Contains(pattern, separator) {
		return nil, ErrSeparatorInInput
	}
	if len(pattern) > len(text) {
		return nil, nil
	}

	z := ZFunction(pattern + separator + text)

	// z marks the start of a match directly.
	var matches []int
	offset := len(pattern) + 1
	for i := offset; i < len(z); i++ {
		if z[i] == len(pattern) {
			matches = append(matches, i-offset)
		}
	}

	return matches, nil
}
