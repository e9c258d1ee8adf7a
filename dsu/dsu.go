package dsu

import "errors"

// Sentinel errors for DSU construction and queries.
var (
	// ErrBadSize indicates New was called with a negative size.
	ErrBadSize = errors.New("dsu: size must be non-negative")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("dsu: element index out of range")
)

// DSU is a disjoint-set union over the integers 0..n-1.
// The zero value is an empty structure; construct with New.
type DSU struct {
	// parent[v] is v's parent in its set's tree; parent[root] == root.
	parent []int

	// rank is an upper bound on the height of each root's tree,
	// used to keep union trees shallow.
	rank []int

	// count is the current number of disjoint sets.
	count int
}

// New creates a DSU of n singleton sets {0}, {1}, …, {n-1}.
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Len returns the number of elements the DSU was created with.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the current number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Find returns the canonical representative of x's set.
// Iterative with full path compression to avoid deep recursion.
func (d *DSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, ErrIndexOutOfRange
	}

	// 1) Walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2) Second pass: point every node on the path directly at the root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root, nil
}

// Union merges the sets containing x and y.
// It returns true if a merge happened, false if they were already one set.
func (d *DSU) Union(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	// Union by rank: attach the shallower tree under the deeper root.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Same reports whether x and y belong to the same set.
func (d *DSU) Same(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}
