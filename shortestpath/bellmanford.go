package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// BellmanFord computes shortest distances from source on a weighted graph
// that may contain negative edge weights.
//
// The algorithm runs |V|−1 full relaxation rounds over the arc list, then one
// extra round: any improvement in the extra round proves a negative cycle
// reachable from source, reported as ErrNegativeCycle. Undirected edges count
// as two opposing arcs, so any undirected negative edge forms such a cycle.
//
// Complexity: O(V·E) time, O(V + E) space.
func BellmanFord(g *graph.Graph, source string) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	// 2) Expand the edge set into directed arcs.
	arcs := expandArcs(g)

	// 3) Initialize distances.
	verts := g.Vertices()
	res := &Result{
		Source: source,
		Dist:   make(map[string]int64, len(verts)),
		Prev:   make(map[string]string, len(verts)),
	}
	for _, v := range verts {
		res.Dist[v] = Inf
	}
	res.Dist[source] = 0

	// 4) |V|−1 relaxation rounds. Stop early once a round changes nothing.
	for round := 1; round < len(verts); round++ {
		if !relaxAll(arcs, res) {
			break
		}
	}

	// 5) Detection round: a further improvement means a negative cycle.
	if relaxAll(arcs, res) {
		return nil, fmt.Errorf("%w: reachable from %q", ErrNegativeCycle, source)
	}

	return res, nil
}

// expandArcs flattens g's edge list into directed arcs, mirroring each
// undirected edge.
func expandArcs(g *graph.Graph) []graph.Edge {
	edges := g.Edges()
	arcs := make([]graph.Edge, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, e)
		if !g.Directed() && e.From != e.To {
			arcs = append(arcs, graph.Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return arcs
}

// relaxAll performs one relaxation pass and reports whether any distance
// improved. Vertices still at Inf never propagate.
func relaxAll(arcs []graph.Edge, res *Result) bool {
	improved := false
	for _, a := range arcs {
		du := res.Dist[a.From]
		if du == Inf {
			continue
		}
		if candidate := du + a.Weight; candidate < res.Dist[a.To] {
			res.Dist[a.To] = candidate
			res.Prev[a.To] = a.From
			improved = true
		}
	}

	return improved
}
