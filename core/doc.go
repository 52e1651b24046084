// Package core defines the central Graph and Node types: an in-memory,
// value-indexed graph supporting directed or undirected topology and an
// optional per-edge weight table.
//
// Storage model:
//
//   - A Graph owns an arena of node slots. A Node is a cheap handle value
//     (slot index + generation) rather than a pointer, so node-to-node
//     references can never form ownership cycles or dangle: every handle
//     dereference performs a liveness check, and removing a node is an O(1)
//     tombstone that invalidates all outstanding handles to it at once.
//   - Adjacency lives in per-slot neighbour lists that preserve insertion
//     order. Edges are represented twice: structurally in those lists (what
//     traversals walk) and, when weighted, in a separate weight table keyed
//     by ordered handle pairs, so unweighted edges cost nothing extra and
//     weight lookup stays O(1).
//   - node values are the identity keys of the graph's index: one value type
//     per Graph instance, one live node per value. Node identity itself is
//     handle identity (Node.Same): two distinct nodes carrying equal values
//     are never the same node.
//
// Errors:
//
//	ErrNotInGraph - an operation referenced a node that is not registered.
//	ErrSelfLoop   - a node was asked to neighbour itself.
//	ErrNilGraph   - a nil *Graph was passed to a package function.
//
// All operations are synchronous, atomic, and single-threaded by contract.
// The package performs no internal locking; callers that share a Graph
// across goroutines must serialize access externally.
package core
