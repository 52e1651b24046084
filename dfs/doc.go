// Package dfs implements iterative depth-first search over a core.Graph.
//
// The frontier is an explicit container.Stack rather than recursion, so the
// traversal depth is bounded by heap memory, not the host call stack.
// Neighbours are pushed in reverse stored order: after all pushes the
// first-stored neighbour sits on top and is visited first, reproducing the
// natural pre-order of recursive DFS.
//
// As with bfs, a node may be pushed more than once before its first visit;
// duplicates are discarded at pop time via the visited set, which also makes
// the traversal cycle-safe.
//
// Complexity: O(V + E) time, O(V) extra space.
package dfs
