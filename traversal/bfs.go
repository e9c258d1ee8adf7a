package traversal

import (
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g starting from start.
//
// Vertices are visited in increasing distance (in edges) from start; ties are
// broken by the sorted neighbor order of graph.Neighbors. The returned
// Result carries visit order, per-vertex depth, and parent links.
//
// Returns ErrNilGraph or ErrStartNotFound on invalid input, or any error
// produced by an OnVisit hook.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
	// 1) Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	// 2) Allocate result maps with a capacity hint of |V|.
	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	// 3) Seed the queue with the start vertex at depth 0.
	queue := make([]queueItem, 0, n)
	queue = append(queue, queueItem{id: start, depth: 0})
	res.Depth[start] = 0

	// 4) Standard FIFO loop: pop, visit, enqueue unseen neighbors.
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, cur.id)
		if o.OnVisit != nil {
			if err := o.OnVisit(cur.id, cur.depth); err != nil {
				return nil, fmt.Errorf("traversal: OnVisit at %q: %w", cur.id, err)
			}
		}

		// Depth limit is exclusive of children: do not expand past MaxDepth.
		if o.MaxDepth >= 0 && cur.depth >= o.MaxDepth {
			continue
		}

		neighbors, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, fmt.Errorf("traversal: neighbors of %q: %w", cur.id, err)
		}
		for _, e := range neighbors {
			if o.FilterNeighbor != nil && !o.FilterNeighbor(cur.id, e.To) {
				continue
			}
			if _, seen := res.Depth[e.To]; seen {
				continue
			}
			res.Depth[e.To] = cur.depth + 1
			res.Parent[e.To] = cur.id
			queue = append(queue, queueItem{id: e.To, depth: cur.depth + 1})
		}
	}

	return res, nil
}
