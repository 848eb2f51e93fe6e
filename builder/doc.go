// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph fixtures for path enumeration:
// chains, rings, diamond ladders, layered DAGs, lattices, tournaments and
// seeded random DAGs. Every fixture numbers its vertices so that 0 is the
// source and N-1 the target, and each one has a closed-form path count that
// tests can check against.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, builder.Diamonds(3))
//	// g has 10 vertices and 8 paths from 0 to 9
//
//	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomDAG(12, 0.3))
//
// Constructors passed together to BuildGraph are joined in series, so
// BuildGraph(nil, Diamonds(2), Layered(3)) has 4·3 = 12 paths.
//
// Errors:
//
//	ErrTooFewVertices     - size parameter below its minimum.
//	ErrInvalidProbability - p outside [0,1].
//	ErrNeedRandSource     - stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed    - BuildGraph called without usable constructors.
package builder
