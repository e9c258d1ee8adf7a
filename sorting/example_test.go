package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algopack/sorting"
)

// ExampleMerge sorts without touching its input.
func ExampleMerge() {
	in := []int{5, 2, 9, 1, 5, 6}
	fmt.Println(sorting.Merge(in))
	fmt.Println(in)
	// Output:
	// [1 2 5 5 6 9]
	// [5 2 9 1 5 6]
}

// ExampleCounting sorts small non-negative ints in linear time.
func ExampleCounting() {
	out, err := sorting.Counting([]int{4, 2, 2, 8, 3, 3, 1}, 8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: [1 2 2 3 3 4 8]
}
