// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order and glues their outputs in series.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Every constructor produces a graph whose source is vertex 0 and whose
// target is vertex N-1, i.e. the shape AllPaths expects.

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

// Constructor produces a deterministic graph fixture from the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Number vertices so that 0 is the source and N-1 the target.
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (core.AdjacencyList, error)

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order, joining their graphs in series: the target of each
// graph is identified with the source of the next one. For fixtures whose
// target has no outgoing edges, the number of 0→N-1 paths of the result is
// the product of the parts' path counts.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor + O(V+E) to glue.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (core.AdjacencyList, error) {
	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildGraph: no constructors: %w", ErrConstructFailed)
	}

	var out core.AdjacencyList
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		part, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		out = series(out, part)
	}

	return out, nil
}

// series glues b after a, identifying a's target with b's source.
// Vertex j of b becomes j + len(a) - 1.
func series(a, b core.AdjacencyList) core.AdjacencyList {
	if len(a) == 0 {
		return b.Clone()
	}
	offset := len(a) - 1
	out := make(core.AdjacencyList, 0, len(a)+len(b)-1)
	out = append(out, a...)
	// the shared vertex keeps a's edges and gains b's source edges
	out[offset] = append(append([]int{}, a[offset]...), shift(b[0], offset)...)
	for _, nbs := range b[1:] {
		out = append(out, shift(nbs, offset))
	}

	return out
}

// shift returns a copy of nbs with offset added to every id.
func shift(nbs []int, offset int) []int {
	out := make([]int, len(nbs))
	for i, v := range nbs {
		out[i] = v + offset
	}

	return out
}

// =============================================================================
// Fixture factories (declarations) - implemented in impl_*.go
// =============================================================================

// Chain builds the path 0→1→…→n-1 (n ≥ 1); exactly one 0→N-1 path.
// Complexity: O(n).
//func Chain(n int) Constructor

// Cycle builds the ring 0→1→…→n-1→0 (n ≥ 1); a cycle reachable from 0.
// Complexity: O(n).
//func Cycle(n int) Constructor

// Diamonds builds k diamonds in series (k ≥ 1); 3k+1 vertices, 2^k paths.
// Complexity: O(k).
//func Diamonds(k int) Constructor

// Layered builds a source, fully connected layers of the given widths, and a
// sink; Π widths paths.
// Complexity: O(Σ w_i·w_{i+1}).
//func Layered(widths ...int) Constructor

// Grid builds the monotone rows×cols lattice (right and down moves only);
// C(rows+cols-2, rows-1) paths.
// Complexity: O(rows·cols).
//func Grid(rows, cols int) Constructor

// Tournament builds the complete DAG i→j for all i<j (n ≥ 1); 2^(n-2) paths for n ≥ 2.
// Complexity: O(n²).
//func Tournament(n int) Constructor

// RandomDAG samples each forward edge i→j (i<j) with probability p.
// Requires cfg.rng != nil for 0 < p < 1.
// Complexity: O(n²) Bernoulli trials.
//func RandomDAG(n int, p float64) Constructor
