// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// impl_random_dag.go — implementation of RandomDAG(n, p).
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • Only forward edges i→j with i < j are sampled, so the result is acyclic
//     and vertex ids are already a topological order.
//   • If 0 < p < 1, cfg.rng MUST be non-nil (ErrNeedRandSource).
//   • p == 0 and p == 1 are deterministic and do not consult the RNG.
//   • Trials run in (i asc, j asc) order; same seed ⇒ same graph.
//
// Complexity:
//   • Time: O(n²) Bernoulli trials, Space: O(n + E).

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

const (
	methodRandomDAG   = "RandomDAG"
	minRandomDAGNodes = 1
	minProbability    = 0.0
	maxProbability    = 1.0
)

// RandomDAG returns a Constructor that samples each forward edge i→j (i<j)
// independently with probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(cfg builderConfig) (core.AdjacencyList, error) {
		// 1) Validate parameters.
		if n < minRandomDAGNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDAG, n, minRandomDAGNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability {
			return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomDAG, p, ErrInvalidProbability)
		}
		if p > minProbability && p < maxProbability && cfg.rng == nil {
			return nil, fmt.Errorf("%s: p=%.6f requires rng: %w", methodRandomDAG, p, ErrNeedRandSource)
		}

		// 2) Sample forward edges in a fixed order.
		g := make(core.AdjacencyList, n)
		for i := 0; i < n; i++ {
			nbs := []int{}
			for j := i + 1; j < n; j++ {
				switch {
				case p == maxProbability:
					nbs = append(nbs, j)
				case p == minProbability:
					// no edges
				case cfg.rng.Float64() < p:
					nbs = append(nbs, j)
				}
			}
			g[i] = nbs
		}

		return cfg.finish(g), nil
	}
}
