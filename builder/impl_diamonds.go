// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// impl_diamonds.go — implementation of Diamonds(k).
//
// Contract:
//   • k ≥ 1 diamonds chained head to tail.
//   • Diamond i occupies vertices b=3i, b+1, b+2, b+3 with edges
//     b→b+1, b→b+2, b+1→b+3, b+2→b+3. Vertex b+3 starts the next diamond.
//   • N = 3k+1 and the graph has exactly 2^k paths from 0 to N-1.
//
// Complexity:
//   • Time: O(k), Space: O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

const (
	methodDiamonds = "Diamonds"
	minDiamonds    = 1
)

// Diamonds returns a Constructor that builds k diamonds in series.
// It is the smallest family whose path count doubles with every step,
// which makes it the standard exponential-output fixture.
func Diamonds(k int) Constructor {
	return func(cfg builderConfig) (core.AdjacencyList, error) {
		// 1) Validate parameters.
		if k < minDiamonds {
			return nil, fmt.Errorf("%s: k=%d < min=%d: %w", methodDiamonds, k, minDiamonds, ErrTooFewVertices)
		}

		// 2) Emit each diamond; the join vertex of the last one is the target.
		n := 3*k + 1
		g := make(core.AdjacencyList, n)
		for i := 0; i < k; i++ {
			b := 3 * i
			g[b] = []int{b + 1, b + 2}
			g[b+1] = []int{b + 3}
			g[b+2] = []int{b + 3}
		}
		g[n-1] = []int{}

		return cfg.finish(g), nil
	}
}
