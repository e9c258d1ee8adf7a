package stringsearch_test

import (
	"fmt"

	"github.com/katalvlaran/algopack/stringsearch"
)

// ExampleFind locates every occurrence of a word, quoted or not.
func ExampleFind() {
	text := "I always wondered why people say hello, and not 'hello'"

	positions, err := stringsearch.Find(text, "hello")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(positions)
	// Output: [33 49]
}

// ExamplePrefixFunction shows the failure array of a string with a repeated
// prefix.
func ExamplePrefixFunction() {
	fmt.Println(stringsearch.PrefixFunction("abcfabcg"))
	// Output: [0 0 0 0 1 2 3 0]
}
