package mst

import "errors"

// Sentinel errors shared by Kruskal and Prim.
var (
	// ErrNilGraph is returned if a nil *graph.Graph is passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDirectedGraph is returned for directed graphs; spanning trees are
	// defined on undirected graphs.
	ErrDirectedGraph = errors.New("mst: undirected graph required")

	// ErrUnweightedGraph is returned when the graph does not carry weights.
	ErrUnweightedGraph = errors.New("mst: graph must be weighted")

	// ErrDisconnected is returned when the graph has no spanning tree,
	// including the |V| == 0 case.
	ErrDisconnected = errors.New("mst: graph is not connected")
)
