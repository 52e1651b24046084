// Package dijkstra result types.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/OoXLR8oO/adtlib/core"
)

// Result holds the outcome of a shortest-path run:
//   - Dist: shortest known distance per node; +Inf for unreachable nodes.
//   - Prev: immediate predecessor on a shortest path; absent for the source
//     and for unreached nodes.
type Result[V comparable] struct {
	Dist map[core.Node[V]]float64
	Prev map[core.Node[V]]core.Node[V]
}

// Unreachable reports whether n was not reached by any weighted path.
func (r *Result[V]) Unreachable(n core.Node[V]) bool {
	d, ok := r.Dist[n]

	return !ok || math.IsInf(d, 1)
}

// PathTo reconstructs the source→dest path along the predecessor links.
// Returns an error if dest was not reached.
func (r *Result[V]) PathTo(dest core.Node[V]) ([]core.Node[V], error) {
	if r.Unreachable(dest) {
		return nil, fmt.Errorf("dijkstra: no path to %v", dest.Value())
	}

	var path []core.Node[V]
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
