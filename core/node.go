// Package core: Node handle methods.
//
// A Node mutates only its own adjacency; symmetry in undirected graphs is
// the responsibility of Graph.AddEdge / Graph.RemoveEdge.
package core

// Value returns the value stored at the node, or the zero value of V if the
// node has been removed from its graph.
func (n Node[V]) Value() V {
	var zero V
	if n.g == nil || !n.g.contains(n) {
		return zero
	}

	return n.g.slots[n.h.idx].value
}

// Same reports handle identity: true only when both handles address the same
// registration in the same graph. Equal values never make two nodes the same.
func (n Node[V]) Same(other Node[V]) bool {
	return n.g != nil && n.g == other.g && n.h == other.h
}

// InGraph reports whether the node is still registered in its graph.
func (n Node[V]) InGraph() bool {
	return n.g != nil && n.g.contains(n)
}

// AddNeighbour appends other to n's adjacency if not already present.
// Returns ErrSelfLoop when other is n itself, ErrNotInGraph when either
// endpoint is stale or foreign. Mutates only n's adjacency.
func (n Node[V]) AddNeighbour(other Node[V]) error {
	if n.g == nil || !n.g.contains(n) || !n.g.contains(other) {
		return ErrNotInGraph
	}
	if n.h == other.h {
		return ErrSelfLoop
	}

	s := &n.g.slots[n.h.idx]
	for _, h := range s.neighbours {
		if h == other.h {
			return nil // already adjacent
		}
	}
	s.neighbours = append(s.neighbours, other.h)

	return nil
}

// RemoveNeighbour drops other from n's adjacency. Absence of the edge is a
// no-op, not an error; a stale receiver returns ErrNotInGraph.
func (n Node[V]) RemoveNeighbour(other Node[V]) error {
	if n.g == nil || !n.g.contains(n) {
		return ErrNotInGraph
	}

	s := &n.g.slots[n.h.idx]
	for i, h := range s.neighbours {
		if h == other.h {
			s.neighbours = append(s.neighbours[:i], s.neighbours[i+1:]...)
			break
		}
	}

	return nil
}

// Neighbours returns the live adjacency of n in insertion order. Handles of
// removed nodes are skipped, so a removed node never appears in any
// neighbour list.
// Complexity: O(deg).
func (n Node[V]) Neighbours() []Node[V] {
	if n.g == nil || !n.g.contains(n) {
		return nil
	}

	s := &n.g.slots[n.h.idx]
	out := make([]Node[V], 0, len(s.neighbours))
	for _, h := range s.neighbours {
		if n.g.liveHandle(h) {
			out = append(out, Node[V]{g: n.g, h: h})
		}
	}

	return out
}

// Degree returns the number of live neighbours. O(deg).
func (n Node[V]) Degree() int {
	if n.g == nil || !n.g.contains(n) {
		return 0
	}

	d := 0
	for _, h := range n.g.slots[n.h.idx].neighbours {
		if n.g.liveHandle(h) {
			d++
		}
	}

	return d
}
