// Package dfs defines the visitation states, sentinel errors and options
// shared by cycle detection and topological sort.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the frame stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrCycleDetected indicates that a cycle was encountered where an acyclic
// graph is required (TopologicalSort, and callers such as path counting).
var ErrCycleDetected = errors.New("dfs: cycle detected")

// Option configures optional behavior of the traversals in this package.
type Option func(*options)

// options holds settings shared by all traversals, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
