// Package bfs provides breadth-first search over a core.Graph, returning
// the visit order, unweighted hop distances, and parent links of the BFS
// tree.
//
// BFS explores nodes in non-decreasing hop distance from the start node,
// ties broken by neighbour insertion order, so the output is deterministic
// for a given construction sequence. The frontier is a container.Queue; a
// node may sit in the queue more than once (neighbours are enqueued before
// they are visited), and duplicates are skipped at dequeue time via the
// visited set, which makes the traversal cycle-safe.
//
// Complexity: O(V + E) time, O(V) extra space.
package bfs
