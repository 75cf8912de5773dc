// Package pathcost answers "can I fly from S to D, and what does it cost?"
// with a depth-first backtracking search over a core.Graph.
//
// The answer is the first route found, not the cheapest one:
//
//  1. If S and D share an edge, that edge's weight is the answer.
//  2. Otherwise the search descends from S, always taking the lowest-index
//     unvisited neighbor first and adding the edge weight to a running total.
//  3. A branch that dead-ends is popped and its edge weight subtracted again;
//     its vertices stay visited and are never entered a second time.
//  4. The first time D is reached, the running total is reported.
//
// Use the dijkstra package when the minimum fare is required.
package pathcost

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// frame is one level of the explicit search stack.
type frame struct {
	idx  int   // vertex at this level
	next int   // next neighbor index to try
	in   int64 // weight of the edge that led here (0 for the root)
}

// searcher holds mutable search state.
type searcher struct {
	snap    *core.Snapshot
	opts    Options
	dst     int
	visited []bool
	stack   []frame
	cost    int64
}

// Search reports the cost of the first route from source to destination.
//
// Implementation:
//   - Stage 1: Validate graph, options and endpoints. Equal endpoints are
//     rejected before existence is checked; source is checked before destination.
//   - Stage 2: Take a snapshot and short-circuit on a direct edge.
//   - Stage 3: Run the backtracking loop on an explicit frame stack.
//
// Returns:
//   - *Result on success.
//   - ErrNoPath when destination is unreachable (or beyond MaxDepth).
//
// Complexity:
//   - Time O(V²): every vertex is entered at most once and each matrix row
//     is scanned at most once in total across resumptions.
//   - Space O(V).
func Search(g *core.Graph, source, destination string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if source == destination {
		return nil, fmt.Errorf("%w: %q", ErrSelfReference, source)
	}

	snap := g.Snapshot()
	src, ok := snap.Index(source)
	if !ok {
		return nil, &core.VertexError{Op: "Search", ID: source, Err: ErrVertexNotFound}
	}
	dst, ok := snap.Index(destination)
	if !ok {
		return nil, &core.VertexError{Op: "Search", ID: destination, Err: ErrVertexNotFound}
	}

	if snap.Adjacent(src, dst) {
		return &Result{
			Source:      source,
			Destination: destination,
			Cost:        snap.Weight(src, dst),
			Direct:      true,
			Path:        []string{source, destination},
		}, nil
	}

	s := &searcher{
		snap:    snap,
		opts:    o,
		dst:     dst,
		visited: make([]bool, snap.Len()),
		stack:   make([]frame, 0, snap.Len()),
	}
	if !s.run(src) {
		return nil, fmt.Errorf("%w: from %q to %q", ErrNoPath, source, destination)
	}

	return &Result{
		Source:      source,
		Destination: destination,
		Cost:        s.cost,
		Path:        s.path(),
	}, nil
}

// run drives the backtracking loop from src; true once dst is on top.
func (s *searcher) run(src int) bool {
	s.enter(src, 0)
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.idx == s.dst {
			return true
		}

		j, ok := s.nextNeighbor(top)
		if !ok {
			s.backtrack()
			continue
		}
		top.next = j + 1
		s.enter(j, s.snap.Weight(top.idx, j))
	}

	return false
}

// nextNeighbor finds the lowest unvisited neighbor of f at or after f.next.
// It also refuses to descend past MaxDepth.
func (s *searcher) nextNeighbor(f *frame) (int, bool) {
	if s.opts.MaxDepth > 0 && len(s.stack) > s.opts.MaxDepth {
		return 0, false
	}
	for j := f.next; j < s.snap.Len(); j++ {
		if s.snap.Adjacent(f.idx, j) && !s.visited[j] {
			return j, true
		}
	}

	return 0, false
}

// enter marks idx visited and pushes it, adding the edge weight w.
func (s *searcher) enter(idx int, w int64) {
	s.visited[idx] = true
	s.cost += w
	s.stack = append(s.stack, frame{idx: idx, in: w})
}

// backtrack pops the top frame and removes its edge weight from the total.
// Visited markers are left set.
func (s *searcher) backtrack() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.cost -= top.in
}

// path returns the labels currently on the stack, root first.
func (s *searcher) path() []string {
	out := make([]string, len(s.stack))
	for i, f := range s.stack {
		out[i] = s.snap.Label(f.idx)
	}

	return out
}
