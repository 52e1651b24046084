package dijkstra

import (
	"fmt"
	"math"

	"github.com/OoXLR8oO/adtlib/container"
	"github.com/OoXLR8oO/adtlib/core"
)

// Dijkstra computes shortest distances from source to every reachable node
// of g, following weighted edges only.
// Returns core.ErrNilGraph for a nil graph and core.ErrNotInGraph (wrapped)
// when source is not a registered node of g.
func Dijkstra[V comparable](g *core.Graph[V], source core.Node[V]) (*Result[V], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Contains(source) {
		return nil, fmt.Errorf("dijkstra: source node: %w", core.ErrNotInGraph)
	}

	nodes := g.Nodes()
	res := &Result[V]{
		Dist: make(map[core.Node[V]]float64, len(nodes)),
		Prev: make(map[core.Node[V]]core.Node[V], len(nodes)),
	}
	for _, n := range nodes {
		res.Dist[n] = math.Inf(1)
	}
	res.Dist[source] = 0

	var pq container.PriorityQueue[core.Node[V]]
	pq.Push(source, 0)

	for !pq.Empty() {
		current, pri, err := pq.Pop()
		if err != nil {
			return nil, err
		}
		// Lazy invalidation guard: the entry is authoritative only if its
		// popped priority equals the current best-known distance. A stale
		// entry means a shorter path was found after this push; discard it.
		if pri != res.Dist[current] {
			continue
		}

		for _, nbr := range current.Neighbours() {
			w, ok := g.EdgeWeight(current, nbr)
			if !ok {
				continue // unweighted edges contribute no traversable path
			}
			candidate := res.Dist[current] + w
			if candidate < res.Dist[nbr] {
				res.Dist[nbr] = candidate
				res.Prev[nbr] = current
				pq.Push(nbr, candidate)
			}
		}
	}

	return res, nil
}
