package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algopack/sorting"
)

// intSorts exposes the comparison sorts under test by name.
var intSorts = map[string]func([]int) []int{
	"Merge": sorting.Merge[int],
	"Quick": sorting.Quick[int],
	"Heap":  sorting.Heap[int],
}

func TestSorts_LiteralCases(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"single", []int{7}, []int{7}},
		{"sorted", []int{1, 2, 3}, []int{1, 2, 3}},
		{"reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"duplicates", []int{3, 1, 3, 1, 3}, []int{1, 1, 3, 3, 3}},
		{"negatives", []int{0, -2, 9, -7, 4}, []int{-7, -2, 0, 4, 9}},
		{"textbook", []int{5, 2, 9, 1, 5, 6}, []int{1, 2, 5, 5, 6, 9}},
	}

	for sortName, sortFn := range intSorts {
		t.Run(sortName, func(t *testing.T) {
			for _, c := range cases {
				assert.Equal(t, c.want, sortFn(c.in), c.name)
			}
			assert.Empty(t, sortFn(nil))
		})
	}
}

func TestSorts_InputNotMutated(t *testing.T) {
	for sortName, sortFn := range intSorts {
		t.Run(sortName, func(t *testing.T) {
			in := []int{3, 1, 2}
			_ = sortFn(in)
			assert.Equal(t, []int{3, 1, 2}, in)
		})
	}
}

func TestSorts_Strings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "banana"}
	want := []string{"apple", "banana", "fig", "pear"}
	assert.Equal(t, want, sorting.Merge(in))
	assert.Equal(t, want, sorting.Quick(in))
	assert.Equal(t, want, sorting.Heap(in))
}

func TestCounting_Basic(t *testing.T) {
	got, err := sorting.Counting([]int{4, 2, 2, 8, 3, 3, 1}, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 3, 4, 8}, got)
}

func TestCounting_Empty(t *testing.T) {
	got, err := sorting.Counting(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCounting_Validation(t *testing.T) {
	_, err := sorting.Counting([]int{1}, -1)
	assert.ErrorIs(t, err, sorting.ErrBadMaxValue)

	_, err = sorting.Counting([]int{-1}, 5)
	assert.ErrorIs(t, err, sorting.ErrValueOutOfRange)

	_, err = sorting.Counting([]int{6}, 5)
	assert.ErrorIs(t, err, sorting.ErrValueOutOfRange)
}
