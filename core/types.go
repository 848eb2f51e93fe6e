// Package core defines AdjacencyList, Edge and the sentinel errors shared by
// the traversal packages.
//
// Errors:
//
//	ErrInvalidGraph      - adjacency entry outside [0, N-1].
//	ErrVertexOutOfRange  - vertex argument outside [0, N-1].
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGraph indicates that some adjacency list contains a vertex id
	// that is not a valid index into the graph.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrVertexOutOfRange indicates that an operation referenced a vertex id
	// outside [0, Order()-1].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is a directed edge From→To between two vertex ids.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int
}

// String renders the edge as "u→v".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d", e.From, e.To)
}

// AdjacencyList is a directed graph over the vertex ids 0..len-1.
//
// The i-th element lists, in order, the vertices directly reachable from
// vertex i. Parallel edges and self-loops are representable; algorithms that
// cannot handle them say so in their own contracts.
type AdjacencyList [][]int

// FromEdges builds an AdjacencyList with n vertices from the given edges.
// Edges keep their input order within each source vertex.
// Returns ErrInvalidGraph if n is negative or any endpoint is out of range.
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge) (AdjacencyList, error) {
	// 1. Reject a negative vertex count up front
	if n < 0 {
		return nil, fmt.Errorf("core: FromEdges: n=%d < 0: %w", n, ErrInvalidGraph)
	}

	// 2. Allocate one (possibly empty) list per vertex
	g := make(AdjacencyList, n)
	for i := range g {
		g[i] = []int{}
	}

	// 3. Append every edge after checking both endpoints
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("core: FromEdges: edge #%d %s with n=%d: %w", i, e, n, ErrInvalidGraph)
		}
		g[e.From] = append(g[e.From], e.To)
	}

	return g, nil
}
