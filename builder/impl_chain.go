// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// impl_chain.go — implementations of Chain(n) and Cycle(n).
//
// Contract:
//   • Chain: n ≥ 1, edges i→i+1, exactly one 0→n-1 path.
//   • Cycle: n ≥ 1, edges i→(i+1) mod n. For n == 1 that is the self-loop 0→0.
//   • Return sentinel errors only; never panic.
//
// Complexity:
//   • Time: O(n), Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

const (
	methodChain   = "Chain"
	methodCycle   = "Cycle"
	minChainNodes = 1
	minCycleNodes = 1
)

// Chain returns a Constructor that builds the path 0→1→…→n-1.
func Chain(n int) Constructor {
	return func(cfg builderConfig) (core.AdjacencyList, error) {
		// 1) Validate parameters.
		if n < minChainNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}

		// 2) Link consecutive vertices; the last one has no successors.
		g := make(core.AdjacencyList, n)
		for i := 0; i < n-1; i++ {
			g[i] = []int{i + 1}
		}
		g[n-1] = []int{}

		return cfg.finish(g), nil
	}
}

// Cycle returns a Constructor that builds the ring 0→1→…→n-1→0.
// The result is not acyclic; it exists to exercise cycle handling.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (core.AdjacencyList, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		g := make(core.AdjacencyList, n)
		for i := 0; i < n; i++ {
			g[i] = []int{(i + 1) % n}
		}

		return cfg.finish(g), nil
	}
}
