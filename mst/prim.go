package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// Prim computes a minimum spanning tree of the undirected weighted graph g
// by growing the tree from the smallest vertex ID, always adopting the
// lightest edge that leaves the current tree.
//
// The candidate heap uses lazy deletion: edges into already-adopted vertices
// stay in the heap and are discarded when popped.
//
// Complexity: O(E log V) time, O(V + E) space.
func Prim(g *graph.Graph) ([]graph.Edge, int64, error) {
	// 1) Validate; same contract as Kruskal.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}
	if !g.Weighted() {
		return nil, 0, ErrUnweightedGraph
	}
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(verts) == 1 {
		return []graph.Edge{}, 0, nil
	}

	// 2) Seed with the smallest vertex ID for determinism.
	inTree := make(map[string]bool, len(verts))
	pq := make(edgeHeap, 0, len(verts))
	heap.Init(&pq)

	adopt := func(id string) error {
		inTree[id] = true
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("mst: neighbors of %q: %w", id, err)
		}
		for _, e := range neighbors {
			if !inTree[e.To] {
				heap.Push(&pq, e)
			}
		}

		return nil
	}
	if err := adopt(verts[0]); err != nil {
		return nil, 0, err
	}

	// 3) Repeatedly take the lightest crossing edge.
	tree := make([]graph.Edge, 0, len(verts)-1)
	var total int64
	for pq.Len() > 0 && len(tree) < len(verts)-1 {
		e := heap.Pop(&pq).(graph.Edge)
		if inTree[e.To] {
			// Lazy deletion: both endpoints joined since this was pushed.
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if err := adopt(e.To); err != nil {
			return nil, 0, err
		}
	}

	// 4) An exhausted heap before |V|−1 adoptions means no spanning tree.
	if len(tree) < len(verts)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgeHeap is a min-heap of crossing edges ordered by weight, with (To, From)
// as deterministic tie-breakers.
type edgeHeap []graph.Edge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	if h[i].To != h[j].To {
		return h[i].To < h[j].To
	}

	return h[i].From < h[j].From
}

func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(graph.Edge)) }

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
