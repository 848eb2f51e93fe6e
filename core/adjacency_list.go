package core

import "fmt"

// Order returns the number of vertices N.
// Complexity: O(1)
func (g AdjacencyList) Order() int {
	return len(g)
}

// Size returns the number of edges, counting parallel edges separately.
// Complexity: O(V)
func (g AdjacencyList) Size() int {
	m := 0
	for _, nbs := range g {
		m += len(nbs)
	}

	return m
}

// Source returns the conventional source vertex, 0.
func (g AdjacencyList) Source() int {
	return 0
}

// Target returns the conventional target vertex N-1, or -1 for an empty graph.
func (g AdjacencyList) Target() int {
	return len(g) - 1
}

// Contains reports whether v is a valid vertex id of g.
func (g AdjacencyList) Contains(v int) bool {
	return v >= 0 && v < len(g)
}

// Neighbors returns the successors of v in adjacency order.
// The returned slice is the graph's own storage and must not be modified.
// Returns ErrVertexOutOfRange when v is not a vertex of g.
// Complexity: O(1)
func (g AdjacencyList) Neighbors(v int) ([]int, error) {
	if !g.Contains(v) {
		return nil, fmt.Errorf("core: Neighbors(%d) with N=%d: %w", v, len(g), ErrVertexOutOfRange)
	}

	return g[v], nil
}

// HasEdge reports whether at least one edge u→v exists.
// Out-of-range ids simply report false.
// Complexity: O(deg(u))
func (g AdjacencyList) HasEdge(u, v int) bool {
	if !g.Contains(u) {
		return false
	}
	for _, w := range g[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Validate checks that every adjacency entry is a valid vertex id.
// The first offending entry is reported, wrapped around ErrInvalidGraph,
// with its source vertex and its position in that vertex's list.
// Complexity: O(V+E)
func (g AdjacencyList) Validate() error {
	n := len(g)
	for from, nbs := range g {
		for pos, to := range nbs {
			if to < 0 || to >= n {
				return fmt.Errorf("core: vertex %d lists %d at position %d, want [0,%d): %w",
					from, to, pos, n, ErrInvalidGraph)
			}
		}
	}

	return nil
}

// Edges returns all edges ordered by source vertex, then by adjacency position.
// Complexity: O(V+E)
func (g AdjacencyList) Edges() []Edge {
	out := make([]Edge, 0, g.Size())
	for from, nbs := range g {
		for _, to := range nbs {
			out = append(out, Edge{From: from, To: to})
		}
	}

	return out
}

// Clone returns a deep copy of g; nil stays nil.
// Complexity: O(V+E)
func (g AdjacencyList) Clone() AdjacencyList {
	if g == nil {
		return nil
	}
	out := make(AdjacencyList, len(g))
	for i, nbs := range g {
		out[i] = append(make([]int, 0, len(nbs)), nbs...)
	}

	return out
}

// Reverse returns the transpose of g: every edge u→v becomes v→u.
// Within each reversed list, sources appear in increasing order.
// Returns ErrInvalidGraph if g does not validate.
// Complexity: O(V+E)
func (g AdjacencyList) Reverse() (AdjacencyList, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("core: Reverse: %w", err)
	}
	out := make(AdjacencyList, len(g))
	for i := range out {
		out[i] = []int{}
	}
	for from, nbs := range g {
		for _, to := range nbs {
			out[to] = append(out[to], from)
		}
	}

	return out, nil
}
