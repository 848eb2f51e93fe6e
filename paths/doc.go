// Package paths enumerates every path from a source vertex to a target
// vertex of a directed graph given as a core.AdjacencyList.
//
// What:
//
//   - AllPaths(g): every path from vertex 0 to vertex N-1.
//   - Enumerate(g, src, dst): the same traversal between arbitrary endpoints,
//     returning the paths together with traversal diagnostics.
//   - Count / CountBetween: the number of such paths, computed by dynamic
//     programming over a topological order without listing them.
//   - IsWalk, IsPath, IsSimple, Format: helpers to check and print results.
//
// How:
//
//	The enumerator keeps an explicit LIFO stack of partial paths seeded with
//	[src]. It pops a path, records it if its last vertex is dst, and then,
//	whether or not it was recorded, pushes one extension per outgoing edge of
//	that last vertex. Extensions are pushed in reverse adjacency order so they
//	are popped in adjacency order; results therefore come out in
//	lexicographic order of adjacency positions:
//
//	    AllPaths({{1,2},{3},{3},{}}) → [[0 1 3] [0 2 3]]
//
//	No recursion is used, so deep graphs do not grow the goroutine stack.
//
// Termination:
//
//	Vertices are NOT de-duplicated inside a path. On a graph where a cycle is
//	reachable from the source the default traversal never finishes. Options
//	harden this precondition:
//
//	  - WithCycleCheck(): fail fast with dfs.ErrCycleDetected if a cycle is
//	    reachable from the source.
//	  - WithPruning(): never extend into a vertex that cannot reach dst; a
//	    cycle that cannot lead to dst is then harmless.
//	  - WithMaxPaths(k), WithContext(ctx): bound the work explicitly.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per candidate.
//   - WithOnCandidate(fn)       observer called for every popped candidate.
//   - WithMaxPaths(k)           stop after k complete paths (k ≥ 0, 0 = no limit).
//   - WithCycleCheck()          fail fast on reachable cycles.
//   - WithPruning()             skip branches that cannot reach the target.
//
// Complexity (P = number of complete paths, L = longest path, for DAGs):
//
//   - Enumerate: Time O(C·L) where C ≤ number of prefixes of all walks from src,
//     Memory O(P·L + stack).
//   - Count:     Time O(V + E), Memory O(V) big integers.
//
// Errors:
//
//   - core.ErrInvalidGraph      an adjacency entry lies outside [0, N-1].
//   - core.ErrVertexOutOfRange  src or dst outside [0, N-1].
//   - dfs.ErrCycleDetected      cycle check or Count on a cyclic graph.
//   - ErrOptionViolation        invalid option value.
//   - context.Canceled          cancelled via WithContext.
//   - errors returned by OnCandidate, wrapped with the candidate.
package paths
