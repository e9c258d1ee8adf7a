package traversal

import (
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// Topological computes a topological ordering of the directed graph g:
// for every edge u→v, u appears before v in the returned slice.
//
// The order is produced by DFS post-order reversal over all vertices in
// sorted ID order, so it is deterministic for a given graph.
//
// Returns ErrNilGraph for a nil graph, ErrNotDirected for an undirected
// graph, and ErrCycle (with the offending vertex wrapped in context) when g
// is not acyclic.
//
// Complexity: O(V + E) time, O(V) memory.
func Topological(g *graph.Graph) ([]string, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	// 2) Three-color DFS over the whole vertex set.
	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts))

	var visit func(id string) error
	visit = func(id string) error {
		state[id] = gray
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("traversal: neighbors of %q: %w", id, err)
		}
		for _, e := range neighbors {
			switch state[e.To] {
			case gray:
				// Back edge into the active path: the graph has a cycle.
				return fmt.Errorf("%w: back edge %s→%s", ErrCycle, id, e.To)
			case white:
				if err := visit(e.To); err != nil {
					return err
				}
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for _, v := range verts {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 3) Reverse the post-order to obtain the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
