// Package paths implements the stack-based path enumerator.
package paths

import (
	"fmt"

	"github.com/katalvlaran/allpaths/bfs"
	"github.com/katalvlaran/allpaths/core"
	"github.com/katalvlaran/allpaths/dfs"
)

// enumerator encapsulates state during one enumeration.
type enumerator struct {
	graph  core.AdjacencyList // validated input graph
	opts   Options            // resolved options
	target int                // vertex that completes a path
	alive  []bool             // co-reachability of target; nil unless pruning
	stack  [][]int            // work-list of partial paths (LIFO)
	res    *Result            // result collector
}

// AllPaths returns every path from vertex 0 to vertex N-1 of g, in
// discovery order (see package doc).
//
//   - N == 0: returns an empty result.
//   - N == 1: returns [[0]].
//
// The graph must be acyclic along everything reachable from 0 unless
// WithCycleCheck, WithPruning, WithMaxPaths or WithContext bound the work.
// Returns core.ErrInvalidGraph if any adjacency entry is out of range; no
// partial result is returned on error.
func AllPaths(g core.AdjacencyList, opts ...Option) ([][]int, error) {
	if len(g) == 0 {
		// nothing to enumerate, but still honor invalid options
		o := resolve(opts)
		if o.err != nil {
			return nil, o.err
		}

		return [][]int{}, nil
	}

	res, err := Enumerate(g, g.Source(), g.Target(), opts...)
	if err != nil {
		return nil, err
	}

	return res.Paths, nil
}

// Enumerate returns every path from src to dst of g together with traversal
// diagnostics. It is the general form of AllPaths.
// Returns core.ErrInvalidGraph, core.ErrVertexOutOfRange, ErrOptionViolation,
// dfs.ErrCycleDetected (with WithCycleCheck), the context error, or an
// OnCandidate error.
func Enumerate(g core.AdjacencyList, src, dst int, opts ...Option) (*Result, error) {
	// 1. Validate input graph once; the traversal indexes without checks
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("paths: %w", err)
	}

	// 2. Validate endpoints
	if !g.Contains(src) || !g.Contains(dst) {
		return nil, fmt.Errorf("paths: endpoints %d→%d with N=%d: %w", src, dst, len(g), core.ErrVertexOutOfRange)
	}

	// 3. Apply options
	o := resolve(opts)
	if o.err != nil {
		return nil, o.err
	}

	e := &enumerator{
		graph:  g,
		opts:   o,
		target: dst,
		res:    &Result{Paths: [][]int{}},
	}

	// 4. Pruning: compute which vertices can still reach dst
	if o.Prune {
		alive, err := bfs.CoReachable(g, dst, bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, fmt.Errorf("paths: pruning: %w", err)
		}
		e.alive = alive
	}

	// 5. Optional fail-fast on reachable cycles
	if o.CycleCheck {
		if err := e.checkCycles(src); err != nil {
			return nil, err
		}
	}

	// 6. Traverse
	if err := e.run(src); err != nil {
		return nil, err
	}

	return e.res, nil
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// checkCycles reports a cycle reachable from src. With pruning enabled only
// edges between live vertices count, since no other edge is ever followed.
func (e *enumerator) checkCycles(src int) error {
	g := e.graph
	if e.alive != nil {
		g = restrict(g, e.alive)
	}
	cycle, err := dfs.FindCycle(g, src, dfs.WithContext(e.opts.Ctx))
	if err != nil {
		return fmt.Errorf("paths: cycle check: %w", err)
	}
	if cycle != nil {
		return fmt.Errorf("paths: cycle %v reachable from %d: %w", cycle, src, dfs.ErrCycleDetected)
	}

	return nil
}

// restrict returns a copy of g keeping only edges whose head is marked in keep.
func restrict(g core.AdjacencyList, keep []bool) core.AdjacencyList {
	out := make(core.AdjacencyList, len(g))
	for v, nbs := range g {
		kept := make([]int, 0, len(nbs))
		for _, w := range nbs {
			if keep[w] {
				kept = append(kept, w)
			}
		}
		out[v] = kept
	}

	return out
}

// run drains the work-list starting from [src].
func (e *enumerator) run(src int) error {
	// A source that cannot reach the target yields nothing under pruning.
	if e.alive != nil && !e.alive[src] {
		return nil
	}

	e.stack = append(e.stack, []int{src})
	for len(e.stack) > 0 {
		// 1. Cancellation check once per candidate
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		// 2. Pop the most recent candidate
		top := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.res.Candidates++

		// 3. Observer hook
		if e.opts.OnCandidate != nil {
			if err := e.opts.OnCandidate(top); err != nil {
				return fmt.Errorf("paths: OnCandidate hook for %v: %w", top, err)
			}
		}

		// 4. Record complete paths; extensions never share top's storage
		last := top[len(top)-1]
		if last == e.target {
			e.res.Paths = append(e.res.Paths, top)
		}

		// 5. Extend by every outgoing edge, whether or not top was complete
		e.extend(top, last)

		// 6. Path limit
		if e.opts.MaxPaths > 0 && len(e.res.Paths) >= e.opts.MaxPaths {
			e.res.Truncated = len(e.stack) > 0
			e.stack = nil
			return nil
		}
	}

	return nil
}

// extend pushes one copy of path+[w] for each successor w of last. Pushing
// in reverse adjacency order makes the first neighbor the next one popped.
func (e *enumerator) extend(path []int, last int) {
	nbs := e.graph[last]
	for i := len(nbs) - 1; i >= 0; i-- {
		w := nbs[i]
		if e.alive != nil && !e.alive[w] {
			e.res.Pruned++
			continue
		}
		next := make([]int, len(path)+1)
		copy(next, path)
		next[len(path)] = w
		e.stack = append(e.stack, next)
	}
}
