package graph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")

	// ErrSelfLoop indicates a self-loop was added while loops are disabled.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)

// Edge is a connection between two vertices.
//
// For an undirected graph every edge is stored once but reported from both
// endpoints by Neighbors. Weight is always 0 in an unweighted graph.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost (or capacity) of the edge.
	Weight int64
}

// Option configures a Graph before creation.
type Option func(*Graph)

// WithDirected makes every edge one-way From→To.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an adjacency-list graph with string vertex IDs.
// The zero value is not usable; construct with New.
type Graph struct {
	directed   bool
	weighted   bool
	allowLoops bool

	// adjacency maps each vertex ID to its outgoing edges.
	// Undirected edges appear in the lists of both endpoints.
	adjacency map[string][]Edge

	// edges holds each edge exactly once, in insertion order.
	edges []Edge
}

// New constructs an empty Graph with the given options applied.
func New(opts ...Option) *Graph {
	g := &Graph{adjacency: make(map[string][]Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// AddVertex registers id as a vertex. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return nil
}

// AddEdge inserts an edge from→to with the given weight, creating both
// endpoints if needed. In an undirected graph the edge is reported from both
// endpoints by Neighbors but counted once by Edges.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrSelfLoop
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	e := Edge{From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	// Mirror undirected edges into the other endpoint's list, except
	// self-loops which would otherwise be reported twice from one vertex.
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}

	return nil
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge exactly once, in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the edges leaving id, sorted by (To, Weight) for
// deterministic traversal order. For undirected graphs this includes edges
// added with id as either endpoint.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, len(adj))
	copy(out, adj)
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out, nil
}
