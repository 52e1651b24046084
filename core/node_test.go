package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OoXLR8oO/adtlib/core"
)

func TestAddNeighbour_SelfLoopRejected(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")

	assert.ErrorIs(t, a.AddNeighbour(a), core.ErrSelfLoop)
	assert.Equal(t, 0, a.Degree())
}

func TestAddNeighbour_Deduplicates(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")

	require.NoError(t, a.AddNeighbour(b))
	require.NoError(t, a.AddNeighbour(b))

	assert.Equal(t, 1, a.Degree())
	// AddNeighbour mutates only the receiver; B stays untouched.
	assert.Equal(t, 0, b.Degree())
}

func TestRemoveNeighbour_AbsentIsNoop(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")

	assert.NoError(t, a.RemoveNeighbour(b))

	require.NoError(t, a.AddNeighbour(b))
	require.NoError(t, a.RemoveNeighbour(b))
	assert.Equal(t, 0, a.Degree())
}

func TestNeighbours_InsertionOrder(t *testing.T) {
	g := core.New[string]()
	a := g.AddNode("A")
	names := []string{"B", "C", "D"}
	for _, v := range names {
		require.NoError(t, a.AddNeighbour(g.AddNode(v)))
	}

	var got []string
	for _, nbr := range a.Neighbours() {
		got = append(got, nbr.Value())
	}
	assert.Equal(t, names, got)
}

func TestNodeIdentity_ValueVsHandle(t *testing.T) {
	g1 := core.New[string]()
	g2 := core.New[string]()
	a1 := g1.AddNode("A")
	a2 := g2.AddNode("A")

	// Equal values in different graphs are different nodes.
	assert.False(t, a1.Same(a2))
	assert.True(t, a1.Same(a1))

	// Handle equality holds across copies.
	copied := a1
	assert.True(t, copied.Same(a1))
}

func TestNode_ZeroValueIsDead(t *testing.T) {
	var n core.Node[string]

	assert.False(t, n.InGraph())
	assert.Equal(t, "", n.Value())
	assert.Nil(t, n.Neighbours())
	assert.Equal(t, 0, n.Degree())
	assert.ErrorIs(t, n.AddNeighbour(n), core.ErrNotInGraph)
}

func TestNeighbour_ForeignGraphRejected(t *testing.T) {
	g1 := core.New[string]()
	g2 := core.New[string]()
	a := g1.AddNode("A")
	x := g2.AddNode("X")

	assert.ErrorIs(t, a.AddNeighbour(x), core.ErrNotInGraph)
}
