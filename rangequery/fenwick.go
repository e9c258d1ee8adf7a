package rangequery

import "errors"

// Sentinel errors shared by the range-query structures.
var (
	// ErrBadSize indicates a negative size passed to NewFenwick.
	ErrBadSize = errors.New("rangequery: size must be non-negative")

	// ErrEmptyInput indicates NewSparseTable received no values.
	ErrEmptyInput = errors.New("rangequery: input must be non-empty")

	// ErrIndexOutOfRange indicates an index outside [0, n).
	ErrIndexOutOfRange = errors.New("rangequery: index out of range")

	// ErrBadRange indicates an invalid query range.
	ErrBadRange = errors.New("rangequery: invalid range")
)

// Fenwick is a binary indexed tree over int64 values at indices 0..n-1.
// Construct with NewFenwick; the zero value is an empty tree.
type Fenwick struct {
	// tree uses the conventional 1-based layout: tree[i] covers the
	// lowbit(i) positions ending at i.
	tree []int64
}

// NewFenwick creates a Fenwick tree of n zero values.
func NewFenwick(n int) (*Fenwick, error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	return &Fenwick{tree: make([]int64, n+1)}, nil
}

// Len returns the number of indexed positions.
func (f *Fenwick) Len() int { return len(f.tree) - 1 }

// Add increases the value at index i by delta.
//
// Complexity: O(log n).
func (f *Fenwick) Add(i int, delta int64) error {
	if i < 0 || i >= f.Len() {
		return ErrIndexOutOfRange
	}

	// Climb the update chain: each step adds the lowest set bit.
	for pos := i + 1; pos < len(f.tree); pos += pos & (-pos) {
		f.tree[pos] += delta
	}

	return nil
}

// PrefixSum returns the sum of values at indices 0..i inclusive.
//
// Complexity: O(log n).
func (f *Fenwick) PrefixSum(i int) (int64, error) {
	if i < 0 || i >= f.Len() {
		return 0, ErrIndexOutOfRange
	}

	// Descend the query chain: each step strips the lowest set bit.
	var sum int64
	for pos := i + 1; pos > 0; pos -= pos & (-pos) {
		sum += f.tree[pos]
	}

	return sum, nil
}

// RangeSum returns the sum of values at indices l..r inclusive.
func (f *Fenwick) RangeSum(l, r int) (int64, error) {
	if l > r || l < 0 || r >= f.Len() {
		return 0, ErrBadRange
	}

	high, err := f.PrefixSum(r)
	if err != nil {
		return 0, err
	}
	if l == 0 {
		return high, nil
	}
	low, err := f.PrefixSum(l - 1)
	if err != nil {
		return 0, err
	}

	return high - low, nil
}
