// Package bfs provides breadth-first traversal over a core.Graph,
// returning visit order, hop distances and parent links.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// queueItem pairs a matrix index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	snap    *core.Snapshot
	opts    Options
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
//
// A vertex is marked visited when it is enqueued, never twice, and neighbors
// are enqueued in increasing matrix-index (insertion) order.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Complexity: O(V²) time (one matrix row scan per dequeue), O(V) space.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	snap := g.Snapshot()
	start, ok := snap.Index(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := snap.Len()
	w := &walker{
		snap:    snap,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent,
// calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	id := w.snap.Label(idx)
	w.visited[idx] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.snap.Label(parent)
	}
	if w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(id, d)
	}
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			w.prune()
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.snap.Label(item.idx)
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// prune drops Depth and Parent entries of vertices still waiting in the
// queue, so an aborted result only describes vertices in Order.
func (w *walker) prune() {
	for _, item := range w.queue {
		id := w.snap.Label(item.idx)
		delete(w.res.Depth, id)
		delete(w.res.Parent, id)
	}
	w.queue = nil
}

// enqueueNeighbors scans the matrix row of item, applies filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	curr := w.snap.Label(item.idx)
	for j := 0; j < w.snap.Len(); j++ {
		if !w.snap.Adjacent(item.idx, j) || w.visited[j] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(curr, w.snap.Label(j)) {
			continue
		}
		w.enqueue(j, nextDepth, item.idx)
	}
}
