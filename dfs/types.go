// Package dfs result types.
package dfs

import (
	"github.com/OoXLR8oO/adtlib/core"
)

// Result holds the outcome of a depth-first traversal:
//   - Order: nodes in pre-order visit sequence, each reachable node once.
//   - Depth: depth in the DFS tree (start node is 0).
//   - Parent: predecessor in the DFS tree; absent for the start node.
type Result[V comparable] struct {
	Order  []core.Node[V]
	Depth  map[core.Node[V]]int
	Parent map[core.Node[V]]core.Node[V]
}
