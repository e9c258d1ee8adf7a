package sequence

// LCS returns one longest common subsequence of a and b.
//
// The DP table dp[i][j] holds the LCS length of a[:i] and b[:j]; the answer
// is read back by walking from dp[len(a)][len(b)] toward the origin. Ties
// prefer stepping back through a, making the result deterministic.
//
// Complexity: O(|a|·|b|) time and space.
func LCS(a, b string) string {
	if a == "" || b == "" {
		return ""
	}

	// 1) Fill the table.
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// 2) Backtrack, emitting matched bytes in reverse.
	out := make([]byte, dp[len(a)][len(b)])
	pos := len(out)
	for i, j := len(a), len(b); i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			pos--
			out[pos] = a[i-1]
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return string(out)
}
