package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algopack/graph"
)

// Dijkstra computes shortest distances from source to every vertex of the
// weighted graph g. All edge weights must be non-negative; a fast O(E)
// pre-scan rejects the graph otherwise.
//
// The priority queue follows the lazy decrease-key strategy: every improved
// distance pushes a fresh heap entry, and entries for already-finalized
// vertices are discarded when popped.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. g must contain source (ErrSourceNotFound).
//  4. No edge may have negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *graph.Graph, source string) (*Result, error) {
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

	// 2) Pre-scan all edges; fail fast on the first negative weight.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Initialize state: every distance Inf, source at 0.
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

	visited := make(map[string]bool, len(verts))
	pq := make(distHeap, 0, len(verts))
	heap.Init(&pq)
	heap.Push(&pq, distEntry{id: source, dist: 0})

	// 4) Main loop: pop the closest unfinalized vertex, relax its edges.
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(distEntry)
		if visited[cur.id] {
			// Stale entry left behind by a later improvement.
			continue
		}
		visited[cur.id] = true

		neighbors, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, fmt.Errorf("shortestpath: neighbors of %q: %w", cur.id, err)
		}
		for _, e := range neighbors {
			candidate := cur.dist + e.Weight
			if candidate >= res.Dist[e.To] {
				continue
			}
			res.Dist[e.To] = candidate
			res.Prev[e.To] = cur.id
			heap.Push(&pq, distEntry{id: e.To, dist: candidate})
		}
	}

	return res, nil
}

// distEntry is one (vertex, tentative distance) pair in the priority queue.
type distEntry struct {
	id   string
	dist int64
}

// distHeap is a min-heap of distEntry ordered by dist ascending.
type distHeap []distEntry

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distEntry)) }

func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
