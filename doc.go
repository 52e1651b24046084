// Package adtlib is a small in-memory collection of classic abstract data
// types: a generic graph engine with traversal and shortest-path algorithms,
// plus the linear containers, linked lists, a binary search tree, and the
// elementary sorts that usually accompany them.
//
// What you get:
//
//	core/      — Graph[V] and Node[V] primitives (directed/undirected, weighted edges)
//	container/ — Queue, Stack, Deque, min-PriorityQueue
//	bfs/       — breadth-first search with depth and parent tracking
//	dfs/       — iterative pre-order depth-first search
//	dijkstra/  — single-source shortest paths over weighted edges
//	list/      — singly, doubly, and circular linked lists
//	tree/      — binary search tree with ordered traversals
//	sorting/   — bubble, selection, insertion, merge sort
//
// Everything is single-threaded and synchronous: a Graph is owned by one
// goroutine at a time, and callers that want concurrent access wrap the
// instance in their own lock.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four nodes, four undirected edges; bfs.BFS from A visits A, B, C, D.
//
//	go get github.com/OoXLR8oO/adtlib
package adtlib
