// Package dfs provides topological sort on core.AdjacencyList.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (frame stack and state slice)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

// TopologicalSort computes a topological ordering of all vertices in g.
// DFS trees are started from vertices in increasing id order, and neighbors
// are explored in adjacency order, so the result is deterministic.
// If g does not validate, returns core.ErrInvalidGraph.
// If a cycle is detected, returns ErrCycleDetected naming the cycle.
// You may pass WithContext(ctx) to enable cancellation.
func TopologicalSort(g core.AdjacencyList, opts ...Option) ([]int, error) {
	// 1. Validate the graph
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w", err)
	}

	// 2. Drive DFS from every unvisited vertex
	w := newWalker(g, resolve(opts))
	for v := range g {
		cycle, err := w.visit(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: TopologicalSort: %w", err)
		}
		if cycle != nil {
			return nil, fmt.Errorf("dfs: TopologicalSort: cycle %v: %w", cycle, ErrCycleDetected)
		}
	}

	// 3. Reverse post-order to produce topological order
	order := w.order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
