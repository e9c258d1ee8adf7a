package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/algopack/sequence"
)

// ExampleLCS finds the common scaffold of two short strings.
func ExampleLCS() {
	fmt.Println(sequence.LCS("AGGTAB", "GXTXAYB"))
	// Output: GTAB
}

// ExampleLIS extracts one longest increasing run from a shuffled slice.
func ExampleLIS() {
	fmt.Println(sequence.LIS([]int{10, 9, 2, 5, 3, 7, 101, 18}))
	// Output: [2 3 7 18]
}
