// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// impl_tournament.go — implementation of Tournament(n).
//
// Contract:
//   • n ≥ 1; edge i→j for every 0 ≤ i < j < n (the transitive tournament).
//   • For n ≥ 2 there are exactly 2^(n-2) paths from 0 to n-1: every subset
//     of the interior vertices, visited in increasing order, is one path.
//
// Complexity:
//   • Time: O(n²), Space: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

const (
	methodTournament   = "Tournament"
	minTournamentNodes = 1
)

// Tournament returns a Constructor that builds the complete DAG on n vertices.
func Tournament(n int) Constructor {
	return func(cfg builderConfig) (core.AdjacencyList, error) {
		if n < minTournamentNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodTournament, n, minTournamentNodes, ErrTooFewVertices)
		}

		g := make(core.AdjacencyList, n)
		for i := 0; i < n; i++ {
			nbs := make([]int, 0, n-i-1)
			for j := i + 1; j < n; j++ {
				nbs = append(nbs, j)
			}
			g[i] = nbs
		}

		return cfg.finish(g), nil
	}
}
