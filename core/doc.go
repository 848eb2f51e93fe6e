// Package core provides the index-addressed directed graph used by every
// traversal in allpaths.
//
// A graph with N vertices is an AdjacencyList: g[i] is the ordered list of
// vertex ids directly reachable from vertex i. Vertex ids are the integers
// 0..N-1, so the representation needs no maps and no locks; a value is
// read-only while an algorithm runs over it.
//
// Why an adjacency list of ints?
//
//   - It is exactly the shape path-enumeration problems are posed in
//     ("paths from 0 to N-1 of [[1,2],[3],[3],[]]").
//   - Neighbor order is the slice order, so every traversal is deterministic
//     without sorting.
//   - Validation is a single O(V+E) pass, done once at the API boundary.
//
// Core Methods:
//
//	Order() int                          // number of vertices, O(1)
//	Size() int                           // number of edges, O(V)
//	Source() int / Target() int          // 0 and N-1 (Target is -1 when N == 0)
//	Neighbors(v int) ([]int, error)      // O(1), ErrVertexOutOfRange
//	HasEdge(u, v int) bool               // O(deg(u))
//	Validate() error                     // O(V+E), ErrInvalidGraph
//	Edges() []Edge                       // O(V+E), (from, position) order
//	Clone() AdjacencyList                // deep copy, O(V+E)
//	Reverse() (AdjacencyList, error)     // transpose, O(V+E)
//	FromEdges(n, edges) (AdjacencyList, error)
//
// Errors:
//
//	ErrInvalidGraph      - an adjacency entry lies outside [0, N-1].
//	ErrVertexOutOfRange  - a query referenced a vertex outside [0, N-1].
//
// Quick example:
//
//	g := core.AdjacencyList{{1, 2}, {3}, {3}, {}}
//	if err := g.Validate(); err != nil { ... }
//	nbs, _ := g.Neighbors(0) // [1 2]
package core
