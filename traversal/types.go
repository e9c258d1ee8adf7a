package traversal

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the traversal entry points.
var (
	// ErrNilGraph is returned if a nil *graph.Graph is passed.
	ErrNilGraph = errors.New("traversal: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("traversal: start vertex not found")

	// ErrNotDirected is returned by Topological for undirected graphs.
	ErrNotDirected = errors.New("traversal: directed graph required")

	// ErrCycle is returned by Topological when the graph is not acyclic.
	ErrCycle = errors.New("traversal: cycle detected")

	// ErrBadMaxDepth signals a negative depth limit (panics in WithMaxDepth).
	ErrBadMaxDepth = errors.New("traversal: MaxDepth must be non-negative")
)

// Vertex coloring used by DFS-based cycle detection and topological sort.
const (
	white = iota // not yet visited
	gray         // on the current DFS path
	black        // fully explored
)

// Option configures BFS and DFS behavior via functional arguments.
type Option func(*Options)

// Options holds the shared tunables of BFS and DFS.
type Options struct {
	// MaxDepth limits exploration to the given depth from the start vertex.
	// -1 (default) means no limit; 0 visits only the start vertex.
	MaxDepth int

	// OnVisit, if non-nil, runs for each visited vertex with its depth.
	// Returning an error aborts the traversal with that error.
	OnVisit func(id string, depth int) error

	// FilterNeighbor, if non-nil, is consulted per edge from→to;
	// returning false skips the edge.
	FilterNeighbor func(from, to string) bool
}

// DefaultOptions returns Options with no depth limit, no hook, no filter.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth limits traversal to depth d from the start vertex.
// d == 0 visits the start vertex only. Negative d panics with ErrBadMaxDepth.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadMaxDepth.Error())
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs a per-vertex hook; an error from the hook aborts.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips edges for which fn(from, to) returns false.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result captures the outcome of a BFS or DFS traversal.
type Result struct {
	// Order lists vertices in visit sequence (preorder for DFS).
	Order []string

	// PostOrder lists vertices in finish sequence. DFS only; nil for BFS.
	PostOrder []string

	// Depth maps each reached vertex to its distance in edges from the start.
	Depth map[string]int

	// Parent maps each reached vertex (except the start) to the vertex it
	// was discovered from.
	Parent map[string]string
}

// PathTo reconstructs the start→dest path recorded in Parent.
// For BFS on an unweighted graph this is a shortest path.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traversal: no recorded path to %q", dest)
	}

	// Walk parent links back to the start, then reverse in place.
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
