// Package dfs implements depth-first traversal on core.Graph with an explicit
// stack instead of recursion, so traversal depth is bounded by memory rather
// than by the goroutine stack.
//
// Key features:
//   - DFS(g, startID, opts...): pre-order visit sequence from a root
//   - Hooks: OnVisit with error abort
//   - FilterNeighbor plus SkippedNeighbors and StalePops diagnostics
//
// Complexity:
//
//   - Time:   O(V²) (one matrix row scan per visited vertex).
//   - Memory: O(V²) worst case for the stack, since a vertex may be pushed
//     once per visited neighbor before it is popped.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// frame is one stack entry: a vertex index and who pushed it.
type frame struct {
	idx    int
	parent int // -1 for the root
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	snap    *core.Snapshot
	opts    DFSOptions
	stack   []frame
	visited []bool
	res     *DFSResult
}

// DFS performs depth-first search on graph g from startID.
//
// The stack is seeded with the start vertex. Each pop of an unvisited vertex
// marks and records it, then pushes its unvisited neighbors in decreasing
// index order, so the lowest-index neighbor is popped next. The visited test
// happens again at pop time; entries for vertices visited in the meantime are
// dropped.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	snap := g.Snapshot()
	start, ok := snap.Index(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := snap.Len()
	w := &dfsWalker{
		snap:    snap,
		opts:    dopts,
		stack:   make([]frame, 0, n),
		visited: make([]bool, n),
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}
	w.stack = append(w.stack, frame{idx: start, parent: -1})

	return w.res, w.loop()
}

// loop pops frames until the stack is empty or a hook fails.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if w.visited[top.idx] {
			w.res.StalePops++
			continue
		}
		if err := w.visit(top); err != nil {
			return err
		}
		w.pushNeighbors(top)
	}

	return nil
}

// visit marks the frame's vertex and records it.
func (w *dfsWalker) visit(f frame) error {
	id := w.snap.Label(f.idx)
	w.visited[f.idx] = true
	w.res.Visited[id] = true
	w.res.Depth[id] = f.depth
	if f.parent >= 0 {
		w.res.Parent[id] = w.snap.Label(f.parent)
	}
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	return nil
}

// pushNeighbors pushes unvisited neighbors of f from the highest index down.
func (w *dfsWalker) pushNeighbors(f frame) {
	for j := w.snap.Len() - 1; j >= 0; j-- {
		if !w.snap.Adjacent(f.idx, j) || w.visited[j] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(w.snap.Label(j)) {
			w.res.SkippedNeighbors++
			continue
		}
		w.stack = append(w.stack, frame{idx: j, parent: f.idx, depth: f.depth + 1})
	}
}
