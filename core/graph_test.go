package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OoXLR8oO/adtlib/core"
)

func TestAddNode_Idempotent(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	again := g.AddNode("A")

	assert.Equal(t, 1, g.NodeCount(), "duplicate value must not grow the graph")
	assert.True(t, a.Same(again), "second AddNode must return the original node")
}

func TestGetNode(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")

	got, ok := g.GetNode("A")
	require.True(t, ok)
	assert.True(t, a.Same(got))

	_, ok = g.GetNode("missing")
	assert.False(t, ok)
}

func TestNodes_InsertionOrder(t *testing.T) {
	g := core.New[int]()
	for _, v := range []int{3, 1, 2} {
		g.AddNode(v)
	}

	var values []int
	for _, n := range g.Nodes() {
		values = append(values, n.Value())
	}
	assert.Equal(t, []int{3, 1, 2}, values)
}

func TestRemoveNode_PurgesAdjacencyAndWeights(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	require.NoError(t, g.AddEdge(a, b, core.WithWeight(2)))
	require.NoError(t, g.AddEdge(c, b, core.WithWeight(4)))

	require.NoError(t, g.RemoveNode(b))

	assert.Equal(t, 2, g.NodeCount())
	assert.False(t, b.InGraph())
	// No remaining node may still list B as neighbour.
	for _, n := range g.Nodes() {
		for _, nbr := range n.Neighbours() {
			assert.False(t, nbr.Same(b), "dangling reference to removed node")
		}
	}
	// Weight entries touching B must be gone.
	if _, ok := g.EdgeWeight(a, b); ok {
		t.Error("EdgeWeight(a, b) still present after RemoveNode(b)")
	}
	_, ok := g.GetNode("B")
	assert.False(t, ok, "index must forget the removed value")
}

func TestRemoveNode_Stale(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	require.NoError(t, g.RemoveNode(a))

	assert.ErrorIs(t, g.RemoveNode(a), core.ErrNotInGraph)
}

func TestRemoveNode_ForeignGraph(t *testing.T) {
	g1 := core.New[string]()
	g2 := core.New[string]()
	other := g2.AddNode("A")

	assert.ErrorIs(t, g1.RemoveNode(other), core.ErrNotInGraph)
}

// A reused slot must never revive handles of the node that occupied it.
func TestSlotReuse_StaleHandles(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	require.NoError(t, g.AddEdge(a, b))

	require.NoError(t, g.RemoveNode(b))
	c := g.AddNode("C") // likely reuses B's slot

	assert.True(t, c.InGraph())
	assert.False(t, b.InGraph(), "stale handle must stay dead after reuse")
	assert.False(t, b.Same(c))
	// A's adjacency still holds B's tombstoned handle internally; it must
	// not surface as the new occupant.
	for _, nbr := range a.Neighbours() {
		assert.False(t, nbr.Same(c))
	}
}

func TestGraphGrowsAfterRemovals(t *testing.T) {
	g := core.New[int]()
	for i := 0; i < 50; i++ {
		n := g.AddNode(i)
		require.NoError(t, g.RemoveNode(n))
	}
	g.AddNode(100)
	g.AddNode(101)

	assert.Equal(t, 2, g.NodeCount())
	var values []int
	for _, n := range g.Nodes() {
		values = append(values, n.Value())
	}
	assert.Equal(t, []int{100, 101}, values)
}
