// Package paths defines the options, sentinel errors and result type of the
// path enumerator.
package paths

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("paths: invalid option supplied")

// Option configures optional behavior of the enumerator.
// Use with AllPaths(g, opts...) or Enumerate(g, src, dst, opts...).
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts enumeration with ctx.Err().
	Ctx context.Context

	// OnCandidate, if non-nil, is invoked for every partial path popped from
	// the work stack, before it is tested against the target. The slice is
	// owned by the enumerator and must not be modified or retained.
	// Returning an error aborts enumeration with that error.
	OnCandidate func(path []int) error

	// MaxPaths, if positive, stops enumeration after that many complete
	// paths. Zero means no limit.
	MaxPaths int

	// CycleCheck, if true, rejects graphs with a cycle reachable from the
	// source (restricted to the pruned graph when Prune is also set).
	CycleCheck bool

	// Prune, if true, never extends a path into a vertex from which the
	// target is unreachable.
	Prune bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No candidate observer
//   - No path limit (MaxPaths = 0)
//   - No cycle check and no pruning, i.e. the plain DAG-only traversal
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnCandidate: nil,
		MaxPaths:    0,
		CycleCheck:  false,
		Prune:       false,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnCandidate returns an Option that installs fn as the per-candidate
// observer, e.g. for tracing.
func WithOnCandidate(fn func(path []int) error) Option {
	return func(o *Options) {
		o.OnCandidate = fn
	}
}

// WithMaxPaths returns an Option that stops enumeration after k complete
// paths. k == 0 means no limit; k < 0 is reported as ErrOptionViolation.
func WithMaxPaths(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPaths = k
	}
}

// WithCycleCheck returns an Option that makes enumeration fail fast with
// dfs.ErrCycleDetected instead of looping forever on a reachable cycle.
func WithCycleCheck() Option {
	return func(o *Options) {
		o.CycleCheck = true
	}
}

// WithPruning returns an Option that skips every successor from which the
// target cannot be reached.
func WithPruning() Option {
	return func(o *Options) {
		o.Prune = true
	}
}

// Result captures the outcome of an enumeration.
type Result struct {
	// Paths holds the complete paths in discovery order.
	Paths [][]int

	// Candidates counts the partial paths popped from the work stack.
	Candidates int

	// Pruned counts the extensions skipped because of WithPruning.
	Pruned int

	// Truncated reports that enumeration stopped at MaxPaths with unexplored
	// candidates left on the stack. Those candidates may all be dead ends, so
	// Truncated does not promise that further complete paths exist.
	Truncated bool
}
