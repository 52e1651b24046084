// Package core: type declarations, sentinel errors, and the Graph
// constructor. Method implementations live in graph.go, node.go, edges.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNotInGraph indicates an operation referenced a node absent from the
	// graph, either never registered, already removed, or belonging to a
	// different Graph instance.
	ErrNotInGraph = errors.New("core: node not in graph")

	// ErrSelfLoop indicates a node was asked to neighbour itself.
	ErrSelfLoop = errors.New("core: node cannot neighbour itself")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// handle addresses one arena slot. The generation counter is bumped each
// time a slot is freed, so a stale handle can never alias a reused slot.
type handle struct {
	idx uint32
	gen uint32
}

// slot is a single arena cell. neighbours preserves insertion order and may
// still hold handles of removed nodes; dereference sites skip those lazily
// via liveness checks.
type slot[V comparable] struct {
	value      V
	gen        uint32
	live       bool
	neighbours []handle
}

// edgeKey identifies one directional weight entry from→to.
type edgeKey struct {
	from, to handle
}

// Node is a handle to a registered graph node. It is a small value type:
// copy it freely, use it as a map key. Two Node values denote the same node
// exactly when Same reports true; the node's stored value takes no part in
// identity.
type Node[V comparable] struct {
	g *Graph[V]
	h handle
}

// Graph is the owning container: node arena, value index, weight table, and
// the directedness flag fixed at construction.
//
// Invariants maintained by the mutating methods:
//   - index and the live slots form a bijection (one live node per value).
//   - every weight entry has two live endpoints.
//   - in undirected mode, adjacency and weights are symmetric.
type Graph[V comparable] struct {
	directed bool

	slots []slot[V]
	free  []uint32 // dead slot indices available for reuse
	order []handle // insertion order; dead handles filtered on read
	count int      // live node count

	index   map[V]handle
	weights map[edgeKey]float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
}

// WithDirected sets the graph's directedness
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// New creates an empty Graph over value type V.
// By default the graph is undirected.
// Complexity: O(1).
func New[V comparable](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed: cfg.directed,
		index:    make(map[V]handle),
		weights:  make(map[edgeKey]float64),
	}
}
