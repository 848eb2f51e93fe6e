// Package dfs implements depth‑first cycle detection and topological sort on
// a core.AdjacencyList.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of all vertices of a
//     directed acyclic graph (DAG), returning ErrCycleDetected otherwise.
//   - DetectCycle: reports whether the graph contains any directed cycle and
//     returns the first one found.
//   - FindCycle: like DetectCycle, restricted to the part of the graph that
//     is reachable from a given vertex.
//
// Why:
//   - Path enumeration only terminates on graphs where no cycle is reachable
//     from the source; FindCycle lets callers fail fast instead of looping.
//   - Path counting runs a dynamic program over a topological order.
//
// How:
//
//	All three use white/gray/black colouring with an explicit frame stack
//	instead of recursion, so a 10⁶-vertex chain does not grow the goroutine
//	stack. A gray→gray edge is a back edge, i.e. a cycle; the cycle is read
//	off the frame stack.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option: functional options (WithContext)
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycle:     Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V'+E') over the reachable part, Memory O(V)
//
// Errors:
//
//   - core.ErrInvalidGraph      adjacency entry outside [0, N-1]
//   - core.ErrVertexOutOfRange  FindCycle start vertex outside [0, N-1]
//   - ErrCycleDetected          cycle discovered by TopologicalSort
//   - context.Canceled          traversal cancelled via WithContext
package dfs
