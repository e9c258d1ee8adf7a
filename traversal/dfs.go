package traversal

import (
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// dfsWalker carries the mutable state of a single DFS run.
type dfsWalker struct {
	g    *graph.Graph
	opts Options
	res  *Result
	seen map[string]bool
}

// DFS performs depth-first search on g starting from start.
//
// Neighbors are explored in the deterministic order of graph.Neighbors, so
// for a given graph the preorder (Result.Order) and post-order
// (Result.PostOrder) are reproducible. Parent links form the DFS tree.
//
// Returns ErrNilGraph or ErrStartNotFound on invalid input, or any error
// produced by an OnVisit hook.
//
// Complexity: O(V + E) time, O(V) memory (recursion depth ≤ V).
func DFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
	// 1) Validate.
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

	// 2) Prepare walker.
	n := g.VertexCount()
	w := &dfsWalker{
		g:    g,
		opts: o,
		seen: make(map[string]bool, n),
		res: &Result{
			Order:     make([]string, 0, n),
			PostOrder: make([]string, 0, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
		},
	}

	// 3) Recurse from the root; parent is recorded by the caller side.
	if err := w.visit(start, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// visit discovers id at the given depth, recurses into unseen neighbors,
// and records id in PostOrder once all descendants finish.
func (w *dfsWalker) visit(id string, depth int) error {
	w.seen[id] = true
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("traversal: OnVisit at %q: %w", id, err)
		}
	}

	// Stop recursing past the depth limit; the vertex itself was visited.
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		neighbors, err := w.g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("traversal: neighbors of %q: %w", id, err)
		}
		for _, e := range neighbors {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, e.To) {
				continue
			}
			if w.seen[e.To] {
				continue
			}
			w.res.Parent[e.To] = id
			if err := w.visit(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
