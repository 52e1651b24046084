// Package core: edge operations on Graph.
//
// Edges exist structurally in the neighbour lists; weights live in a
// separate table keyed by ordered handle pairs. Undirected graphs mirror
// both representations, so symmetry holds after every mutation.
package core

// EdgeOption configures an edge as it is added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight    float64
	hasWeight bool
}

// WithWeight records a weight for the edge being added. Without this option
// the edge is structural only: it participates in traversals but has no
// entry in the weight table.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.hasWeight = true
	}
}

// AddEdge establishes adjacency a→b, plus b→a when the graph is undirected.
// With WithWeight the weight is recorded for a→b, and symmetrically for
// undirected graphs. Re-adding an existing edge is a no-op apart from
// overwriting its weight.
// Returns ErrNotInGraph if either endpoint is unregistered, ErrSelfLoop if
// a and b are the same node. Validation happens before any mutation, so a
// failed call leaves the graph untouched.
// Complexity: O(deg(a)).
func (g *Graph[V]) AddEdge(a, b Node[V], opts ...EdgeOption) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.contains(a) || !g.contains(b) {
		return ErrNotInGraph
	}
	if a.h == b.h {
		return ErrSelfLoop
	}

	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Endpoints are validated live; AddNeighbour cannot fail past this point.
	_ = a.AddNeighbour(b)
	if !g.directed {
		_ = b.AddNeighbour(a)
	}

	if cfg.hasWeight {
		g.weights[edgeKey{from: a.h, to: b.h}] = cfg.weight
		if !g.directed {
			g.weights[edgeKey{from: b.h, to: a.h}] = cfg.weight
		}
	}

	return nil
}

// RemoveEdge removes the a→b adjacency and its weight entry, and the mirror
// direction when the graph is undirected. Removing an absent edge is a
// no-op once both endpoints validate.
// Returns ErrNotInGraph if either endpoint is unregistered.
func (g *Graph[V]) RemoveEdge(a, b Node[V]) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.contains(a) || !g.contains(b) {
		return ErrNotInGraph
	}

	_ = a.RemoveNeighbour(b)
	delete(g.weights, edgeKey{from: a.h, to: b.h})
	if !g.directed {
		_ = b.RemoveNeighbour(a)
		delete(g.weights, edgeKey{from: b.h, to: a.h})
	}

	return nil
}

// SetEdgeWeight overwrites-or-creates the weight of edge a→b, establishing
// the adjacency if it does not exist yet (same semantics as AddEdge with
// WithWeight). Undirected graphs record both directions, so this path can
// never introduce one-sided weight asymmetry.
func (g *Graph[V]) SetEdgeWeight(a, b Node[V], weight float64) error {
	return g.AddEdge(a, b, WithWeight(weight))
}

// EdgeWeight returns the recorded weight of edge a→b. The second return is
// false when no weight is recorded; the edge may still exist structurally
// as an unweighted edge.
// Complexity: O(1).
func (g *Graph[V]) EdgeWeight(a, b Node[V]) (float64, bool) {
	if g == nil || !g.contains(a) || !g.contains(b) {
		return 0, false
	}
	w, ok := g.weights[edgeKey{from: a.h, to: b.h}]

	return w, ok
}

// HasEdge reports whether the structural edge a→b exists.
// Complexity: O(deg(a)).
func (g *Graph[V]) HasEdge(a, b Node[V]) bool {
	if g == nil || !g.contains(a) || !g.contains(b) {
		return false
	}
	for _, h := range g.slots[a.h.idx].neighbours {
		if h == b.h {
			return true
		}
	}

	return false
}
