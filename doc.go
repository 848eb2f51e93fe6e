// Package allpaths enumerates every path from a source to a target vertex of
// a directed graph given as adjacency lists.
//
// 🚀 What is allpaths?
//
//	A small, deterministic toolkit built around one question: "which routes
//	lead from vertex 0 to vertex N-1?"
//		• Core primitives: AdjacencyList with validation, reverse, edges
//		• Traversals: BFS (reachability, co-reachability), iterative DFS
//		• Cycle detection & topological order
//		• Path enumeration with an explicit LIFO stack, plus exact counting
//		• Fixture builders: chains, diamonds, layered DAGs, tournaments, random DAGs
//
// ✨ Why choose allpaths?
//
//   - Deterministic – results follow adjacency order, no maps, no sorting
//   - No recursion – deep graphs never grow the goroutine stack
//   - Guarded – opt-in cycle checks, pruning, path limits and cancellation
//   - Observable – a per-candidate hook replaces ad-hoc tracing
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     — AdjacencyList, Edge and the shared sentinel errors
//	bfs/      — breadth-first search, depth limits, co-reachability
//	dfs/      — iterative cycle detection and topological sort
//	paths/    — AllPaths, Enumerate, Count and path helpers
//	builder/  — deterministic graph fixtures with closed-form path counts
//	cmd/allpaths — command-line front end for JSON and HCL graph files
//
// Quick ASCII example:
//
//	      ┌──► 1 ──┐
//	    0 ┤        ├──► 3
//	      └──► 2 ──┘
//
//	AllPaths([[1,2],[3],[3],[]]) → [[0 1 3] [0 2 3]]
//
//	go get github.com/katalvlaran/allpaths
package allpaths
