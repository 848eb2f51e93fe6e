// Package bfs provides breadth-first search over a core.AdjacencyList,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/allpaths/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.AdjacencyList
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int             // index of the next item to dequeue
	visited *sparsesets.Set // vertices already enqueued
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns core.ErrInvalidGraph or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g core.AdjacencyList, start int, opts ...Option) (*BFSResult, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.Contains(start) {
		return nil, fmt.Errorf("bfs: start %d with N=%d: %w", start, len(g), ErrStartVertexNotFound)
	}

	// Prepare walker
	n := len(g)
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: sparsesets.New(n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// filled returns a slice of length n with every element set to v.
func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// enqueue marks v visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited.Insert(v)
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph[item.v] {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		// first time seen?
		if !w.visited.Contains(nbr) {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}
}

// CoReachable reports, for every vertex v of g, whether target is reachable
// from v (target itself included). It runs BFS from target over the
// transposed graph.
// Returns core.ErrInvalidGraph or ErrStartVertexNotFound for invalid input.
func CoReachable(g core.AdjacencyList, target int, opts ...Option) ([]bool, error) {
	rev, err := g.Reverse()
	if err != nil {
		return nil, fmt.Errorf("bfs: CoReachable: %w", err)
	}
	res, err := BFS(rev, target, opts...)
	if err != nil {
		return nil, fmt.Errorf("bfs: CoReachable: %w", err)
	}

	out := make([]bool, len(g))
	for _, v := range res.Order {
		out[v] = true
	}

	return out, nil
}
