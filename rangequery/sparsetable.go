package rangequery

import "math/bits"

// SparseTable answers range-minimum queries over immutable int64 data in
// O(1) after O(n log n) preprocessing. Construct with NewSparseTable.
type SparseTable struct {
	// table[k][i] is the minimum of values[i .. i+2^k−1].
	table [][]int64
}

// NewSparseTable precomputes power-of-two window minima over values.
// The input is copied; later mutation of values does not affect queries.
func NewSparseTable(values []int64) (*SparseTable, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	levels := bits.Len(uint(n))
	table := make([][]int64, levels)
	table[0] = append([]int64(nil), values...)

	// Level k combines two overlapping level k−1 windows.
	for k := 1; k < levels; k++ {
		width := 1 << k
		table[k] = make([]int64, n-width+1)
		for i := range table[k] {
			left := table[k-1][i]
			right := table[k-1][i+width/2]
			if right < left {
				left = right
			}
			table[k][i] = left
		}
	}

	return &SparseTable{table: table}, nil
}

// Len returns the number of indexed positions.
func (s *SparseTable) Len() int { return len(s.table[0]) }

// RangeMin returns the minimum of values[l..r] inclusive by overlapping the
// two largest power-of-two windows that fit; idempotence of min makes the
// double-counted middle harmless.
//
// Complexity: O(1).
func (s *SparseTable) RangeMin(l, r int) (int64, error) {
	if l > r || l < 0 || r >= s.Len() {
		return 0, ErrBadRange
	}

	k := bits.Len(uint(r-l+1)) - 1
	left := s.table[k][l]
	right := s.table[k][r-(1<<k)+1]
	if right < left {
		return right, nil
	}

	return left, nil
}
