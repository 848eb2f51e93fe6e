// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// impl_layered.go — implementation of Layered(widths...).
//
// Contract:
//   • Vertex 0 is the source, vertex N-1 the sink, N = 2 + Σ widths.
//   • Every vertex of layer i links to every vertex of layer i+1; the source
//     links to the whole first layer and the last layer links to the sink.
//   • With no widths the result is the single edge 0→1.
//   • Each width must be ≥ 1. The path count is Π widths.
//
// Complexity:
//   • Time: O(Σ w_i·w_{i+1}), Space: same.

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

const (
	methodLayered = "Layered"
	minLayerWidth = 1
)

// Layered returns a Constructor that builds a fully connected layered DAG.
func Layered(widths ...int) Constructor {
	return func(cfg builderConfig) (core.AdjacencyList, error) {
		// 1) Validate widths and compute the first id of every layer.
		starts := make([]int, len(widths)+2)
		starts[0] = 0
		next := 1
		for i, w := range widths {
			if w < minLayerWidth {
				return nil, fmt.Errorf("%s: widths[%d]=%d < min=%d: %w",
					methodLayered, i, w, minLayerWidth, ErrTooFewVertices)
			}
			starts[i+1] = next
			next += w
		}
		sink := next
		starts[len(widths)+1] = sink

		// 2) Treat source and sink as layers of width 1 and connect neighbors.
		width := func(layer int) int {
			if layer == 0 || layer == len(widths)+1 {
				return 1
			}
			return widths[layer-1]
		}
		g := make(core.AdjacencyList, sink+1)
		for layer := 0; layer <= len(widths); layer++ {
			from, to := starts[layer], starts[layer+1]
			for u := from; u < from+width(layer); u++ {
				nbs := make([]int, 0, width(layer+1))
				for v := to; v < to+width(layer+1); v++ {
					nbs = append(nbs, v)
				}
				g[u] = nbs
			}
		}
		g[sink] = []int{}

		return cfg.finish(g), nil
	}
}
