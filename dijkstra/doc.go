// Package dijkstra implements single-source shortest paths over the
// weighted edges of a core.Graph.
//
// The algorithm processes nodes in order of increasing distance from the
// source using a container.PriorityQueue, relaxing each weighted edge it
// encounters. Decrease-key is lazy: an improved distance is pushed as a new
// entry, and a popped entry is authoritative only when its priority still
// equals the best-known distance for that node; stale entries are
// discarded, wasted work rather than wrong answers.
//
// Two deliberate policy choices:
//
//   - Edges without a recorded weight are not traversable here, even when
//     they exist structurally. Weighted shortest paths consider weighted
//     edges only; an unweighted edge is neither weight zero nor weight one.
//   - Negative weights are out of contract. The algorithm's correctness
//     assumes non-negative edges; behaviour with negative weights is
//     undefined.
//
// Distances are float64; unreachable nodes keep +Inf and never gain a
// predecessor. There is no early exit for a specific target: the run
// computes distances to every reachable node.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
