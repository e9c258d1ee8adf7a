package maxflow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// Sentinel errors for max-flow computation.
var (
	// ErrNilGraph is returned if a nil *graph.Graph is passed.
	ErrNilGraph = errors.New("maxflow: graph is nil")

	// ErrNotDirected is returned for undirected graphs.
	ErrNotDirected = errors.New("maxflow: directed graph required")

	// ErrVertexNotFound is returned when source or sink is absent.
	ErrVertexNotFound = errors.New("maxflow: vertex not found")

	// ErrSameSourceSink is returned when source and sink coincide.
	ErrSameSourceSink = errors.New("maxflow: source equals sink")

	// ErrNegativeCapacity is returned when an edge weight is negative.
	ErrNegativeCapacity = errors.New("maxflow: negative edge capacity")
)

// Result reports the outcome of a max-flow computation.
type Result struct {
	// Value is the total flow pushed from source to sink.
	Value int64

	// Flow maps u → v → net flow assigned to the merged arc u→v.
	// Arcs carrying zero flow are omitted.
	Flow map[string]map[string]int64
}

// EdmondsKarp computes the maximum source→sink flow in g, treating each edge
// weight as a capacity. Parallel arcs are merged by summing capacities.
//
// Steps:
//  1. Validate the network (see package errors).
//  2. Build the residual capacity table: residual[u][v] starts at the merged
//     capacity, and every arc gets a 0-capacity reverse slot.
//  3. Loop: BFS for the shortest residual source→sink path; if none, stop.
//     Push the bottleneck along the path, decreasing forward residuals and
//     increasing reverse ones.
//  4. Recover per-arc flow as capacity minus final forward residual.
//
// Complexity: O(V·E²) time, O(V + E) space.
func EdmondsKarp(g *graph.Graph, source, sink string) (*Result, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: sink %q", ErrVertexNotFound, sink)
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	// 2) Merge parallel arcs into a capacity table and mirror the zero-
	//    capacity reverse slots the residual updates will need.
	capacity := make(map[string]map[string]int64)
	residual := make(map[string]map[string]int64)
	slot := func(m map[string]map[string]int64, u, v string) map[string]int64 {
		row, ok := m[u]
		if !ok {
			row = make(map[string]int64)
			m[u] = row
		}
		_, ok = row[v]
		if !ok {
			row[v] = 0
		}

		return row
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeCapacity, e.From, e.To, e.Weight)
		}
		slot(capacity, e.From, e.To)[e.To] += e.Weight
		slot(residual, e.From, e.To)[e.To] += e.Weight
		slot(residual, e.To, e.From)
	}

	// 3) Augment along shortest residual paths until none remain.
	res := &Result{Flow: make(map[string]map[string]int64)}
	for {
		parent := bfsResidualPath(g, residual, source, sink)
		if parent == nil {
			break
		}

		// Bottleneck along sink→source parent chain.
		bottleneck := int64(0)
		for v := sink; v != source; v = parent[v] {
			r := residual[parent[v]][v]
			if bottleneck == 0 || r < bottleneck {
				bottleneck = r
			}
		}

		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
		res.Value += bottleneck
	}

	// 4) Per-arc flow = original capacity − remaining forward residual.
	for u, row := range capacity {
		for v, c := range row {
			if pushed := c - residual[u][v]; pushed > 0 {
				if res.Flow[u] == nil {
					res.Flow[u] = make(map[string]int64)
				}
				res.Flow[u][v] = pushed
			}
		}
	}

	return res, nil
}

// bfsResidualPath finds the shortest source→sink path with positive residual
// capacity and returns the parent map, or nil when the sink is unreachable.
// Neighbor candidates come from sorted vertex order for determinism.
func bfsResidualPath(g *graph.Graph, residual map[string]map[string]int64, source, sink string) map[string]string {
	verts := g.Vertices()
	parent := make(map[string]string, len(verts))
	seen := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		// Sorted global vertex order keeps the scan deterministic even
		// though the residual rows are maps.
		for _, v := range verts {
			if seen[v] || residual[u][v] <= 0 {
				continue
			}
			seen[v] = true
			parent[v] = u
			if v == sink {
				return parent
			}
			queue = append(queue, v)
		}
	}

	return nil
}
