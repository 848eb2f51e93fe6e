// SPDX-License-Identifier: MIT
// Package: allpaths/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil   (pure/deterministic unless seeded)
//   • reverse = false (adjacency lists in increasing id order)

package builder

import "math/rand" // RNG for stochastic builders

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// reverse emits every adjacency list in decreasing id order, which flips
	// the discovery order of enumerated paths without changing the path set.
	reverse bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		rng:     nil,
		reverse: false,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// finish applies the per-config emission policy to a freshly built graph.
func (cfg builderConfig) finish(g [][]int) [][]int {
	if !cfg.reverse {
		return g
	}
	for _, nbs := range g {
		for i, j := 0, len(nbs)-1; i < j; i, j = i+1, j-1 {
			nbs[i], nbs[j] = nbs[j], nbs[i]
		}
	}

	return g
}
