package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algopack/graph"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := graph.New()
	assert.ErrorIs(t, g.AddVertex(""), graph.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, []string{"A"}, g.Vertices())
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("B", "A", 0))
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddEdge_WeightOnUnweighted(t *testing.T) {
	g := graph.New()
	assert.ErrorIs(t, g.AddEdge("A", "B", 3), graph.ErrBadWeight)
	// Zero weight is always fine.
	assert.NoError(t, g.AddEdge("A", "B", 0))
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := graph.New()
	assert.ErrorIs(t, g.AddEdge("A", "A", 0), graph.ErrSelfLoop)

	loops := graph.New(graph.WithLoops())
	require.NoError(t, loops.AddEdge("A", "A", 0))
	nbrs, err := loops.Neighbors("A")
	require.NoError(t, err)
	// A self-loop must be reported once, not mirrored.
	assert.Len(t, nbrs, 1)
}

func TestNeighbors_UndirectedMirrors(t *testing.T) {
	g := graph.New(graph.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 7))

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, fromA, 1)
	assert.Equal(t, graph.Edge{From: "A", To: "B", Weight: 7}, fromA[0])

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, graph.Edge{From: "B", To: "A", Weight: 7}, fromB[0])

	// Edges still counts the undirected edge once.
	assert.Len(t, g.Edges(), 1)
}

func TestNeighbors_DirectedOneWay(t *testing.T) {
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, fromB)
}

func TestNeighbors_Missing(t *testing.T) {
	g := graph.New()
	_, err := g.Neighbors("X")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestNeighbors_SortedDeterministic(t *testing.T) {
	g := graph.New(graph.WithDirected(), graph.WithWeighted())
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 9))
	require.NoError(t, g.AddEdge("A", "B", 2))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 3)
	assert.Equal(t, "B", nbrs[0].To)
	assert.Equal(t, int64(2), nbrs[0].Weight)
	assert.Equal(t, "B", nbrs[1].To)
	assert.Equal(t, "C", nbrs[2].To)
}
