package stringsearch

import (
	"errors"
	"strings"
)

// separator joins pattern and text in Find and FindZ. It must not occur in
// either input; the O(n) matching argument depends on that.
const separator = "#"

// Sentinel errors for the matchers.
var (
	// ErrEmptyPattern is returned when the pattern is the empty string.
	ErrEmptyPattern = errors.New("stringsearch: pattern is empty")

	// ErrSeparatorInInput is returned when text or pattern contains the
	// reserved separator byte.
	ErrSeparatorInInput = errors.New("stringsearch: input contains reserved separator '#'")
)

// PrefixFunction computes the KMP failure array π of s.
//
// π[i] is the length of the longest proper prefix of s[0..i] that is also a
// suffix of s[0..i]; π[0] is 0 by definition. For example:
//
//	s = "abcfabcg" → π = [0 0 0 0 1 2 3 0]
//	s = "abadababz" → π = [0 0 1 0 1 2 3 2 0]
//
// Complexity: O(|s|) time, O(|s|) space.
func PrefixFunction(s string) []int {
	pi := make([]int, len(s))

	for i := 1; i < len(s); i++ {
		// Start from the best border of the previous position and shrink it
		// until it can be extended by s[i] (or nothing is left).
		j := pi[i-1]
		for j > 0 && s[i] != s[j] {
			j = pi[j-1]
		}
		if s[i] == s[j] {
			j++
		}
		pi[i] = j
	}

	return pi
}

// Find returns the 0-based positions of every occurrence of pattern in text,
// in ascending order, using the prefix function of pattern + "#" + text.
//
// A nil slice means no occurrence, which includes the case of a pattern
// longer than the text. Overlapping occurrences are all reported.
//
// Returns ErrEmptyPattern for an empty pattern and ErrSeparatorInInput when
// either input contains the separator byte.
//
// Complexity: O(|text| + |pattern|) time and space.
func Find(text, pattern string) ([]int, error) {
	// 1) Validate.
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if strings.Contains(text, separator) || strings.Contains(pattern, separator) {
		return nil, ErrSeparatorInInput
	}
	if len(pattern) > len(text) {
		return nil, nil
	}

	// 2) π over the concatenation. The separator resets every border, so
	//    π can only reach len(pattern) by matching the whole pattern.
	pi := PrefixFunction(pattern + separator + text)

	// 3) Read off full-length borders past the separator. π marks the end
	//    of a match, so shift back by len(pattern)−1 to its start.
	var matches []int
	offset := len(pattern) + 1
	for i := offset; i < len(pi); i++ {
		if pi[i] == len(pattern) {
			matches = append(matches, i-offset-(len(pattern)-1))
		}
	}

	return matches, nil
}
