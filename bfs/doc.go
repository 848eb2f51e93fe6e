// Package bfs provides breadth-first search over a core.AdjacencyList,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus the reverse-reachability query used to prune path enumeration.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: distance per vertex, -1 if unreached
//   - Parent: predecessor per vertex in the BFS tree, -1 for the root and unreached
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth.
//   - CoReachable marks every vertex from which a given target can be reached,
//     by running BFS on the transposed graph.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - A path-enumeration branch whose tail vertex cannot reach the target can
//     never complete; CoReachable lets the enumerator skip it.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS:         Time O(V + E), Memory O(V)
//   - CoReachable: Time O(V + E), Memory O(V + E) for the transpose
//
// Errors
//
//   - core.ErrInvalidGraph   graph does not validate
//   - ErrStartVertexNotFound start id outside [0, N-1]
//   - ErrOptionViolation     negative MaxDepth
//   - context.Canceled       traversal cancelled
//   - errors returned by OnVisit, wrapped with the vertex id
package bfs
