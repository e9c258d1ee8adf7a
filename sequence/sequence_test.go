package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algopack/sequence"
)

func TestLCS_LiteralCases(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"", "", ""},
		{"abc", "", ""},
		{"", "abc", ""},
		{"abc", "abc", "abc"},
		{"abcde", "ace", "ace"},
		{"AGGTAB", "GXTXAYB", "GTAB"},
		{"abc", "def", ""},
		{"XMJYAUZ", "MZJAWXU", "MJAU"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sequence.LCS(c.a, c.b), "LCS(%q, %q)", c.a, c.b)
	}
}

func TestLCS_IsCommonSubsequence(t *testing.T) {
	isSubsequence := func(sub, s string) bool {
		i := 0
		for j := 0; i < len(sub) && j < len(s); j++ {
			if sub[i] == s[j] {
				i++
			}
		}

		return i == len(sub)
	}

	a, b := "bananas", "kansas"
	got := sequence.LCS(a, b)
	assert.True(t, isSubsequence(got, a), "%q not a subsequence of %q", got, a)
	assert.True(t, isSubsequence(got, b), "%q not a subsequence of %q", got, b)
	assert.Len(t, got, 4) // "anas"
}

func TestLIS_LiteralCases(t *testing.T) {
	cases := []struct {
		in, want []int
	}{
		{[]int{}, []int{}},
		{[]int{5}, []int{5}},
		{[]int{1, 2, 3}, []int{1, 2, 3}},
		{[]int{3, 2, 1}, []int{1}},
		{[]int{10, 9, 2, 5, 3, 7, 101, 18}, []int{2, 3, 7, 18}},
		{[]int{0, 1, 0, 3, 2, 3}, []int{0, 1, 2, 3}},
		{[]int{7, 7, 7, 7}, []int{7}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sequence.LIS(c.in), "LIS(%v)", c.in)
	}
}

func TestLIS_WitnessIsIncreasingSubsequence(t *testing.T) {
	in := []int{3, 4, -1, 0, 6, 2, 3}
	got := sequence.LIS(in)
	assert.Len(t, got, 4) // −1, 0, 2, 3

	// Strictly increasing.
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
	// A genuine subsequence of the input.
	i := 0
	for _, v := range in {
		if i < len(got) && v == got[i] {
			i++
		}
	}
	assert.Equal(t, len(got), i)
}
