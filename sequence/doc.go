// Package sequence implements the two classic subsequence problems:
// longest common subsequence and longest increasing subsequence.
//
// Overview:
//
//   - LCS(a, b): one longest string that appears in both a and b as a
//     subsequence (not necessarily contiguous), recovered by backtracking
//     through the full DP table. O(|a|·|b|) time and space. When several
//     longest subsequences exist, backtracking prefers advancing in a,
//     which fixes one deterministic answer.
//   - LIS(values): one longest strictly increasing subsequence, via the
//     patience technique: tails[k] holds the smallest possible tail of an
//     increasing subsequence of length k+1, located by binary search.
//     Predecessor links recover a witness. O(n log n) time, O(n) space.
//
// Both functions accept empty inputs and return empty results for them;
// there is no malformed input, hence no error returns.
package sequence
