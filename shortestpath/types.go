package shortestpath

import (
	"errors"
	"fmt"
	"math"
)

// Inf marks an unreachable vertex in every distance map of this package.
const Inf = int64(math.MaxInt64)

// Sentinel errors shared by the shortest-path entry points.
var (
	// ErrNilGraph is returned if a nil *graph.Graph is passed.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrUnweightedGraph is returned when the graph does not carry weights;
	// all three algorithms are meaningless without them.
	ErrUnweightedGraph = errors.New("shortestpath: graph must be weighted")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("shortestpath: source vertex not found")

	// ErrNegativeWeight is returned by Dijkstra when any edge weight is negative.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrNegativeCycle is returned when a reachable negative cycle exists.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle detected")
)

// Result holds single-source distances and predecessor links.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source string

	// Dist maps each vertex to its shortest distance from Source,
	// or Inf if the vertex is unreachable.
	Dist map[string]int64

	// Prev maps each reached vertex (except Source) to its predecessor on
	// one shortest path from Source.
	Prev map[string]string
}

// PathTo reconstructs one shortest Source→dest path from the Prev links.
// Returns an error when dest is unknown or unreachable.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || d == Inf {
		return nil, fmt.Errorf("shortestpath: no path from %q to %q", r.Source, dest)
	}

	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
