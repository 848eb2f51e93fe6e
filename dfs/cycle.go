// Package dfs implements directed cycle detection for core.AdjacencyList.
// The walker below colours vertices White/Gray/Black and keeps the current
// DFS path as an explicit stack of frames; a neighbor that is Gray closes a
// cycle, which is read directly off that stack.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (state slice + frame stack)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

// frame is one entry of the explicit DFS stack: vertex v and the position of
// the next neighbor of v still to be examined.
type frame struct {
	v    int
	next int
}

// walker encapsulates state shared by DetectCycle, FindCycle and TopologicalSort.
type walker struct {
	graph core.AdjacencyList // the graph being explored (validated)
	ctx   context.Context    // cancellation
	state []int              // White/Gray/Black per vertex
	stack []frame            // current DFS path
	order []int              // post-order of finished vertices
}

// newWalker allocates a walker for an already validated graph.
func newWalker(g core.AdjacencyList, o options) *walker {
	return &walker{
		graph: g,
		ctx:   o.ctx,
		state: make([]int, len(g)), // all White
		stack: make([]frame, 0, len(g)),
		order: make([]int, 0, len(g)),
	}
}

// visit explores everything reachable from root that is still White.
// It returns the first cycle met as a closed walk [v … v], or nil.
func (w *walker) visit(root int) ([]int, error) {
	if w.state[root] != White {
		return nil, nil
	}

	// 1) Seed the stack with root
	w.state[root] = Gray
	w.stack = append(w.stack[:0], frame{v: root})

	for len(w.stack) > 0 {
		// 2) Cancellation check once per step
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		nbs := w.graph[top.v]

		// 3) All neighbors done: finish the vertex
		if top.next >= len(nbs) {
			w.state[top.v] = Black
			w.order = append(w.order, top.v)
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 4) Examine the next neighbor
		nbr := nbs[top.next]
		top.next++
		switch w.state[nbr] {
		case White:
			w.state[nbr] = Gray
			w.stack = append(w.stack, frame{v: nbr})
		case Gray:
			// back edge: the cycle runs from nbr's frame to the top
			return w.cycleTo(nbr), nil
		}
	}

	return nil, nil
}

// cycleTo extracts the stack segment starting at v and closes it with v.
func (w *walker) cycleTo(v int) []int {
	idx := len(w.stack) - 1
	for idx > 0 && w.stack[idx].v != v {
		idx--
	}
	cycle := make([]int, 0, len(w.stack)-idx+1)
	for _, f := range w.stack[idx:] {
		cycle = append(cycle, f.v)
	}

	return append(cycle, v)
}

// DetectCycle inspects all of g for a directed cycle, starting DFS trees
// from vertices in increasing id order.
// Returns (true, cycle, nil) with the first cycle found as a closed walk
// [v0, v1, …, v0]; (false, nil, nil) if g is acyclic. Self-loops count as
// cycles of length one ([v, v]).
func DetectCycle(g core.AdjacencyList, opts ...Option) (bool, []int, error) {
	// 1) Validate once up front; the walker indexes without checks
	if err := g.Validate(); err != nil {
		return false, nil, fmt.Errorf("dfs: DetectCycle: %w", err)
	}

	// 2) Launch DFS from each unvisited vertex
	w := newWalker(g, resolve(opts))
	for v := range g {
		cycle, err := w.visit(v)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycle: %w", err)
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}

// FindCycle returns the first directed cycle reachable from vertex from, or
// nil when every walk starting at from is finite.
// Returns core.ErrVertexOutOfRange if from is not a vertex of g and
// core.ErrInvalidGraph if g does not validate.
func FindCycle(g core.AdjacencyList, from int, opts ...Option) ([]int, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("dfs: FindCycle: %w", err)
	}
	if !g.Contains(from) {
		return nil, fmt.Errorf("dfs: FindCycle(%d) with N=%d: %w", from, len(g), core.ErrVertexOutOfRange)
	}

	cycle, err := newWalker(g, resolve(opts)).visit(from)
	if err != nil {
		return nil, fmt.Errorf("dfs: FindCycle: %w", err)
	}

	return cycle, nil
}
