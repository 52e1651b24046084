// Package core: vertex-set operations on Graph.
package core

// Directed reports whether edges default to one-way adjacency.
func (g *Graph[V]) Directed() bool { return g.directed }

// NodeCount returns the number of live nodes. O(1).
func (g *Graph[V]) NodeCount() int { return g.count }

// AddNode registers value and returns its node handle. If a node with an
// equal value is already registered this is a no-op and the existing node is
// returned (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[V]) AddNode(value V) Node[V] {
	if h, ok := g.index[value]; ok {
		return Node[V]{g: g, h: h}
	}

	var h handle
	if n := len(g.free); n > 0 {
		// Reuse a tombstoned slot; its generation was already bumped on
		// removal, so handles minted here never collide with stale ones.
		idx := g.free[n-1]
		g.free = g.free[:n-1]
		s := &g.slots[idx]
		s.value = value
		s.live = true
		s.neighbours = nil
		h = handle{idx: idx, gen: s.gen}
	} else {
		g.slots = append(g.slots, slot[V]{value: value, live: true})
		h = handle{idx: uint32(len(g.slots) - 1)}
	}

	g.index[value] = h
	g.order = append(g.order, h)
	g.count++

	return Node[V]{g: g, h: h}
}

// GetNode looks up the node registered under value. O(1).
func (g *Graph[V]) GetNode(value V) (Node[V], bool) {
	h, ok := g.index[value]
	if !ok {
		return Node[V]{}, false
	}

	return Node[V]{g: g, h: h}, true
}

// RemoveNode unregisters n: its slot is tombstoned in O(1), its weight
// entries are purged, and every other node's adjacency stops yielding it
// (dead handles are filtered lazily on read, never observable).
// Returns ErrNotInGraph if n is stale or belongs to another graph.
func (g *Graph[V]) RemoveNode(n Node[V]) error {
	if !g.contains(n) {
		return ErrNotInGraph
	}

	s := &g.slots[n.h.idx]
	delete(g.index, s.value)
	var zero V
	s.value = zero
	s.neighbours = nil
	s.live = false
	s.gen++ // invalidates every outstanding handle to this slot
	g.free = append(g.free, n.h.idx)
	g.count--

	// The weight table is swept eagerly so EdgeWeight can never report an
	// edge touching a dead endpoint.
	for k := range g.weights {
		if k.from == n.h || k.to == n.h {
			delete(g.weights, k)
		}
	}

	g.compactOrder()

	return nil
}

// Nodes returns all live nodes in insertion order.
// Complexity: O(n).
func (g *Graph[V]) Nodes() []Node[V] {
	out := make([]Node[V], 0, g.count)
	for _, h := range g.order {
		if g.liveHandle(h) {
			out = append(out, Node[V]{g: g, h: h})
		}
	}

	return out
}

// Contains reports whether n is a live node of g. O(1).
func (g *Graph[V]) Contains(n Node[V]) bool {
	return g.contains(n)
}

// contains validates ownership and liveness of a handle-bearing node.
func (g *Graph[V]) contains(n Node[V]) bool {
	return n.g == g && g != nil && g.liveHandle(n.h)
}

// liveHandle reports whether h addresses a live slot of this graph.
func (g *Graph[V]) liveHandle(h handle) bool {
	if int(h.idx) >= len(g.slots) {
		return false
	}
	s := &g.slots[h.idx]

	return s.live && s.gen == h.gen
}

// compactOrder rewrites the insertion-order slice once tombstones outnumber
// live entries, keeping Nodes linear in the live count amortized.
func (g *Graph[V]) compactOrder() {
	if len(g.order) <= 2*g.count+8 {
		return
	}
	kept := g.order[:0]
	for _, h := range g.order {
		if g.liveHandle(h) {
			kept = append(kept, h)
		}
	}
	g.order = kept
}
