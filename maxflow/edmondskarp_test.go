package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algopack/graph"
	"github.com/katalvlaran/algopack/maxflow"
)

type arc struct {
	from, to string
	cap      int64
}

func flowNetwork(t *testing.T, arcs []arc) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithDirected(), graph.WithWeighted())
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.from, a.to, a.cap))
	}

	return g
}

func TestEdmondsKarp_Validation(t *testing.T) {
	_, err := maxflow.EdmondsKarp(nil, "s", "t")
	assert.ErrorIs(t, err, maxflow.ErrNilGraph)

	undirected := graph.New(graph.WithWeighted())
	require.NoError(t, undirected.AddEdge("s", "t", 1))
	_, err = maxflow.EdmondsKarp(undirected, "s", "t")
	assert.ErrorIs(t, err, maxflow.ErrNotDirected)

	g := flowNetwork(t, []arc{{"s", "t", 1}})
	_, err = maxflow.EdmondsKarp(g, "x", "t")
	assert.ErrorIs(t, err, maxflow.ErrVertexNotFound)
	_, err = maxflow.EdmondsKarp(g, "s", "x")
	assert.ErrorIs(t, err, maxflow.ErrVertexNotFound)
	_, err = maxflow.EdmondsKarp(g, "s", "s")
	assert.ErrorIs(t, err, maxflow.ErrSameSourceSink)

	neg := graph.New(graph.WithDirected(), graph.WithWeighted())
	require.NoError(t, neg.AddEdge("s", "t", -1))
	_, err = maxflow.EdmondsKarp(neg, "s", "t")
	assert.ErrorIs(t, err, maxflow.ErrNegativeCapacity)
}

func TestEdmondsKarp_SingleEdge(t *testing.T) {
	g := flowNetwork(t, []arc{{"s", "t", 5}})
	res, err := maxflow.EdmondsKarp(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Value)
	assert.Equal(t, int64(5), res.Flow["s"]["t"])
}

func TestEdmondsKarp_NoPath(t *testing.T) {
	g := flowNetwork(t, []arc{{"s", "a", 3}, {"t", "b", 2}})
	res, err := maxflow.EdmondsKarp(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Value)
	assert.Empty(t, res.Flow)
}

func TestEdmondsKarp_BottleneckChain(t *testing.T) {
	// s→a→b→t: flow limited by the tightest middle edge.
	g := flowNetwork(t, []arc{
		{"s", "a", 10}, {"a", "b", 3}, {"b", "t", 7},
	})
	res, err := maxflow.EdmondsKarp(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Value)
}

func TestEdmondsKarp_ClassicNetwork(t *testing.T) {
	// The published reference network with maximum flow 23.
	g := flowNetwork(t, []arc{
		{"s", "a", 16}, {"s", "b", 13},
		{"a", "b", 10}, {"b", "a", 4},
		{"a", "c", 12}, {"c", "b", 9},
		{"b", "d", 14}, {"d", "c", 7},
		{"c", "t", 20}, {"d", "t", 4},
	})
	res, err := maxflow.EdmondsKarp(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, int64(23), res.Value)

	// Flow conservation at every internal vertex.
	for _, v := range []string{"a", "b", "c", "d"} {
		var in, out int64
		for u, row := range res.Flow {
			for w, f := range row {
				if w == v {
					in += f
				}
				if u == v {
					out += f
				}
			}
		}
		assert.Equal(t, in, out, "conservation at %s", v)
	}
}

func TestEdmondsKarp_ReverseFlowRequired(t *testing.T) {
	// The zig-zag network where the optimum needs flow cancellation.
	g := flowNetwork(t, []arc{
		{"s", "a", 1}, {"s", "b", 1},
		{"a", "b", 1},
		{"a", "t", 1}, {"b", "t", 1},
	})
	res, err := maxflow.EdmondsKarp(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Value)
}

func TestEdmondsKarp_ParallelArcsMerged(t *testing.T) {
	g := flowNetwork(t, []arc{
		{"s", "t", 2}, {"s", "t", 3},
	})
	res, err := maxflow.EdmondsKarp(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Value)
	assert.Equal(t, int64(5), res.Flow["s"]["t"])
}
