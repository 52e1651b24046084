package bfs

import (
	"fmt"

	"github.com/OoXLR8oO/adtlib/container"
	"github.com/OoXLR8oO/adtlib/core"
)

// BFS runs breadth-first search on g from start.
// Returns core.ErrNilGraph for a nil graph and core.ErrNotInGraph (wrapped)
// when start is not a registered node of g.
func BFS[V comparable](g *core.Graph[V], start core.Node[V]) (*Result[V], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("bfs: start node: %w", core.ErrNotInGraph)
	}

	n := g.NodeCount()
	res := &Result[V]{
		Order:  make([]core.Node[V], 0, n),
		Depth:  make(map[core.Node[V]]int, n),
		Parent: make(map[core.Node[V]]core.Node[V], n),
	}
	visited := make(map[core.Node[V]]bool, n)

	var frontier container.Queue[core.Node[V]]
	res.Depth[start] = 0
	frontier.Enqueue(start)

	for !frontier.Empty() {
		node, err := frontier.Dequeue()
		if err != nil {
			return nil, err
		}
		// Duplicate entries are expected: a node can be enqueued several
		// times before its first dequeue. Skip all but the first.
		if visited[node] {
			continue
		}
		visited[node] = true
		res.Order = append(res.Order, node)

		for _, nbr := range node.Neighbours() {
			if visited[nbr] {
				continue
			}
			// First discovery fixes depth and parent; later enqueues of the
			// same node cannot be at a smaller hop distance.
			if _, seen := res.Depth[nbr]; !seen {
				res.Depth[nbr] = res.Depth[node] + 1
				res.Parent[nbr] = node
			}
			frontier.Enqueue(nbr)
		}
	}

	return res, nil
}
