package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OoXLR8oO/adtlib/core"
)

func TestAddEdge_UndirectedSymmetry(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")

	require.NoError(t, g.AddEdge(a, b))

	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
}

func TestAddEdge_DirectedOneWay(t *testing.T) {
	g := core.New[string](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")

	require.NoError(t, g.AddEdge(a, b, core.WithWeight(3)))

	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))

	w, ok := g.EdgeWeight(a, b)
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
	_, ok = g.EdgeWeight(b, a)
	assert.False(t, ok, "directed weight must not be mirrored")
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")

	other := core.New[string]().AddNode("X")
	assert.ErrorIs(t, g.AddEdge(a, other), core.ErrNotInGraph)
	assert.ErrorIs(t, g.AddEdge(a, a), core.ErrSelfLoop)

	var nilGraph *core.Graph[string]
	assert.ErrorIs(t, nilGraph.AddEdge(a, a), core.ErrNilGraph)
}

func TestEdgeWeight_UndirectedSymmetric(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	require.NoError(t, g.AddEdge(a, b, core.WithWeight(2.5)))

	wab, okAB := g.EdgeWeight(a, b)
	wba, okBA := g.EdgeWeight(b, a)
	require.True(t, okAB)
	require.True(t, okBA)
	assert.Equal(t, wab, wba)
}

func TestEdgeWeight_UnweightedEdgeAbsent(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	require.NoError(t, g.AddEdge(a, b))

	assert.True(t, g.HasEdge(a, b), "structural edge exists")
	_, ok := g.EdgeWeight(a, b)
	assert.False(t, ok, "no weight recorded for an unweighted edge")
}

func TestRemoveEdge(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	require.NoError(t, g.AddEdge(a, b, core.WithWeight(1)))

	require.NoError(t, g.RemoveEdge(a, b))

	assert.False(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))
	_, ok := g.EdgeWeight(a, b)
	assert.False(t, ok)
	_, ok = g.EdgeWeight(b, a)
	assert.False(t, ok)
}

func TestRemoveEdge_UnregisteredEndpoint(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	require.NoError(t, g.RemoveNode(b))

	assert.ErrorIs(t, g.RemoveEdge(a, b), core.ErrNotInGraph)
}

func TestSetEdgeWeight_CreatesAdjacency(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")

	require.NoError(t, g.SetEdgeWeight(a, b, 7))

	assert.True(t, g.HasEdge(a, b), "SetEdgeWeight must ensure the edge exists")
	assert.True(t, g.HasEdge(b, a))
	w, ok := g.EdgeWeight(b, a)
	require.True(t, ok, "undirected weight must be recorded both ways")
	assert.Equal(t, 7.0, w)
}

func TestSetEdgeWeight_Overwrites(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	require.NoError(t, g.AddEdge(a, b, core.WithWeight(1)))

	require.NoError(t, g.SetEdgeWeight(a, b, 9))

	w, _ := g.EdgeWeight(a, b)
	assert.Equal(t, 9.0, w)
	w, _ = g.EdgeWeight(b, a)
	assert.Equal(t, 9.0, w)
}
