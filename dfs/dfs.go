package dfs

import (
	"fmt"

	"github.com/OoXLR8oO/adtlib/container"
	"github.com/OoXLR8oO/adtlib/core"
)

// frame is one pending visit on the explicit stack. The parent travels with
// the node so the DFS tree edge is the one actually taken, not merely the
// last push.
type frame[V comparable] struct {
	node      core.Node[V]
	parent    core.Node[V]
	depth     int
	hasParent bool
}

// DFS runs iterative pre-order depth-first search on g from start.
// Returns core.ErrNilGraph for a nil graph and core.ErrNotInGraph (wrapped)
// when start is not a registered node of g.
func DFS[V comparable](g *core.Graph[V], start core.Node[V]) (*Result[V], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("dfs: start node: %w", core.ErrNotInGraph)
	}

	n := g.NodeCount()
	res := &Result[V]{
		Order:  make([]core.Node[V], 0, n),
		Depth:  make(map[core.Node[V]]int, n),
		Parent: make(map[core.Node[V]]core.Node[V], n),
	}
	visited := make(map[core.Node[V]]bool, n)

	var frontier container.Stack[frame[V]]
	frontier.Push(frame[V]{node: start})

	for !frontier.Empty() {
		f, err := frontier.Pop()
		if err != nil {
			return nil, err
		}
		if visited[f.node] {
			continue
		}
		visited[f.node] = true
		res.Order = append(res.Order, f.node)
		res.Depth[f.node] = f.depth
		if f.hasParent {
			res.Parent[f.node] = f.parent
		}

		// Reverse stored order so the first-stored neighbour ends on top of
		// the stack and is explored first.
		nbrs := f.node.Neighbours()
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i]] {
				frontier.Push(frame[V]{
					node:      nbrs[i],
					parent:    f.node,
					depth:     f.depth + 1,
					hasParent: true,
				})
			}
		}
	}

	return res, nil
}
