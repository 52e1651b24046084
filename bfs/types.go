// Package bfs result types.
package bfs

import (
	"fmt"

	"github.com/OoXLR8oO/adtlib/core"
)

// Result holds the outcome of a breadth-first traversal:
//   - Order: nodes in visit sequence, each reachable node exactly once.
//   - Depth: hop distance from the start node; only reached nodes have keys.
//   - Parent: predecessor in the BFS tree; absent for the start node.
type Result[V comparable] struct {
	Order  []core.Node[V]
	Depth  map[core.Node[V]]int
	Parent map[core.Node[V]]core.Node[V]
}

// PathTo reconstructs the start→dest path along the BFS tree.
// Returns an error if dest was not reached.
func (r *Result[V]) PathTo(dest core.Node[V]) ([]core.Node[V], error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest.Value())
	}

	var path []core.Node[V]
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
