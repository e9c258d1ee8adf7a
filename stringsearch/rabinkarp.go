package stringsearch

// Rolling-hash parameters: a prime base larger than the byte alphabet and a
// large prime modulus keep collisions rare; hits are verified regardless.
const (
	hashBase = 257
	hashMod  = 1_000_000_007
)

// RabinKarp returns the 0-based positions of every occurrence of pattern in
// text using a polynomial rolling hash.
//
// Every window of text with the pattern's hash is verified by direct string
// comparison before being reported, so the output is exact; collisions only
// cost extra comparisons. Contract otherwise identical to Find, except no
// separator byte is reserved.
//
// Complexity: expected O(|text| + |pattern|) time, O(1) extra space beyond
// the result.
func RabinKarp(text, pattern string) ([]int, error) {
	// 1) Validate.
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	m, n := len(pattern), len(text)
	if m > n {
		return nil, nil
	}

	// 2) Hash the pattern and the first window; precompute base^(m−1) for
	//    removing the leading byte on each roll.
	var patternHash, windowHash, lead int64
	lead = 1
	for i := 0; i < m; i++ {
		patternHash = (patternHash*hashBase + int64(pattern[i])) % hashMod
		windowHash = (windowHash*hashBase + int64(text[i])) % hashMod
		if i > 0 {
			lead = lead * hashBase % hashMod
		}
	}

	// 3) Slide the window across text.
	var matches []int
	for i := 0; ; i++ {
		if windowHash == patternHash && text[i:i+m] == pattern {
			matches = append(matches, i)
		}
		if i+m == n {
			break
		}
		// Roll: drop text[i], append text[i+m].
		windowHash = (windowHash - int64(text[i])*lead%hashMod + hashMod) % hashMod
		windowHash = (windowHash*hashBase + int64(text[i+m])) % hashMod
	}

	return matches, nil
}
