package mst

import (
	"sort"

	"github.com/katalvlaran/algopack/dsu"
	"github.com/katalvlaran/algopack/graph"
)

// Kruskal computes a minimum spanning tree of the undirected weighted graph g.
//
// Steps:
//  1. Validate: non-nil, undirected, weighted. |V| == 0 → ErrDisconnected;
//     |V| == 1 → trivial empty MST.
//  2. Collect edges, skipping self-loops (they can never join components).
//  3. Stable-sort edges by ascending weight; insertion order breaks ties
//     deterministically.
//  4. Scan sorted edges with a DSU: an edge joining two components enters
//     the tree, others are discarded.
//  5. Stop at |V|−1 tree edges; fewer after the scan means ErrDisconnected.
//
// Complexity: O(E log E + E·α(V)) ≈ O(E log V) time, O(V + E) space.
func Kruskal(g *graph.Graph) ([]graph.Edge, int64, error) {
	// 1) Validate.
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

	// 2) Collect candidate edges.
	all := g.Edges()
	edges := make([]graph.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3) Sort by weight; stable keeps insertion order among equals.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4) DSU over vertex indices in sorted-ID order.
	index := make(map[string]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}
	sets, err := dsu.New(len(verts))
	if err != nil {
		return nil, 0, err
	}

	tree := make([]graph.Edge, 0, len(verts)-1)
	var total int64
	for _, e := range edges {
		merged, err := sets.Union(index[e.From], index[e.To])
		if err != nil {
			return nil, 0, err
		}
		if !merged {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(verts)-1 {
			break
		}
	}

	// 5) A spanning tree of |V| vertices needs exactly |V|−1 edges.
	if len(tree) < len(verts)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
