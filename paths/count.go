package paths

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/allpaths/bfs"
	"github.com/katalvlaran/allpaths/core"
	"github.com/katalvlaran/allpaths/dfs"
)

// Count returns the number of paths AllPaths(g) would return, without
// listing them. Parallel edges yield distinct paths, exactly as in AllPaths.
//
//   - N == 0: 0.
//   - N == 1: 1.
//
// Only cycles that lie on some 0→N-1 walk matter; if one exists the count is
// unbounded and dfs.ErrCycleDetected is returned.
// Complexity: O(V + E) big-integer additions.
func Count(g core.AdjacencyList) (*big.Int, error) {
	if len(g) == 0 {
		return new(big.Int), nil
	}

	return CountBetween(g, g.Source(), g.Target())
}

// CountBetween returns the number of paths from src to dst.
// Returns core.ErrInvalidGraph, core.ErrVertexOutOfRange, or
// dfs.ErrCycleDetected when infinitely many paths exist.
func CountBetween(g core.AdjacencyList, src, dst int) (*big.Int, error) {
	// 1. Validate graph and endpoints
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("paths: Count: %w", err)
	}
	if !g.Contains(src) || !g.Contains(dst) {
		return nil, fmt.Errorf("paths: Count: endpoints %d→%d with N=%d: %w", src, dst, len(g), core.ErrVertexOutOfRange)
	}

	// 2. Keep only vertices that are reachable from src and can reach dst
	fwd, err := bfs.BFS(g, src)
	if err != nil {
		return nil, fmt.Errorf("paths: Count: %w", err)
	}
	back, err := bfs.CoReachable(g, dst)
	if err != nil {
		return nil, fmt.Errorf("paths: Count: %w", err)
	}
	keep := make([]bool, len(g))
	for v := range keep {
		keep[v] = fwd.Reached(v) && back[v]
	}
	if !keep[src] {
		return new(big.Int), nil
	}
	sub := restrict(g, keep)
	for v := range sub {
		if !keep[v] {
			sub[v] = nil
		}
	}

	// 3. A cycle in the remaining subgraph means infinitely many walks
	order, err := dfs.TopologicalSort(sub)
	if err != nil {
		return nil, fmt.Errorf("paths: Count: %w", err)
	}

	// 4. ways[v] = [v == dst] + Σ ways[w] over edges v→w, in reverse topological order
	ways := make([]*big.Int, len(g))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		sum := new(big.Int)
		if v == dst {
			sum.SetInt64(1)
		}
		for _, w := range sub[v] {
			sum.Add(sum, ways[w])
		}
		ways[v] = sum
	}

	return ways[src], nil
}
