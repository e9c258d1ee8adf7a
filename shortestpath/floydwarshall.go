package shortestpath

import (
	"github.com/katalvlaran/algopack/graph"
)

// FloydWarshall computes all-pairs shortest distances for the weighted graph
// g. Negative edge weights are allowed; a negative value on any diagonal
// entry after the run proves a negative cycle (ErrNegativeCycle).
//
// The result maps dist[u][v] to the shortest u→v distance, Inf when v is
// unreachable from u, and 0 on the diagonal. When multiple parallel edges
// connect a pair, the lightest one is used.
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g *graph.Graph) (map[string]map[string]int64, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 2) Initialize the distance matrix: 0 on the diagonal, direct edge
	//    weights (minimum over parallel edges), Inf elsewhere.
	verts := g.Vertices()
	dist := make(map[string]map[string]int64, len(verts))
	for _, u := range verts {
		row := make(map[string]int64, len(verts))
		for _, v := range verts {
			row[v] = Inf
		}
		row[u] = 0
		dist[u] = row
	}
	for _, a := range expandArcs(g) {
		if a.Weight < dist[a.From][a.To] {
			dist[a.From][a.To] = a.Weight
		}
	}

	// 3) Triple loop: allow each vertex in turn as an intermediate hop.
	//    Inf guards keep the additions from overflowing.
	for _, k := range verts {
		for _, i := range verts {
			dik := dist[i][k]
			if dik == Inf {
				continue
			}
			for _, j := range verts {
				dkj := dist[k][j]
				if dkj == Inf {
					continue
				}
				if candidate := dik + dkj; candidate < dist[i][j] {
					dist[i][j] = candidate
				}
			}
		}
	}

	// 4) A negative diagonal entry certifies a negative cycle through it.
	for _, v := range verts {
		if dist[v][v] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	return dist, nil
}
