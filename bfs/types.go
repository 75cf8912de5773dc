package bfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/flightnet/core"
)

var (
	// ErrGraphNil is returned when BFS receives a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound names a start airport absent from the graph.
	// errors.Is also matches core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex not found: %w", core.ErrVertexNotFound)

	// ErrOptionViolation is recorded by an Option given an invalid value and
	// returned by BFS before any work is done.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the traversal never saw.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option mutates Options.
type Option func(*Options)

// Options tunes a traversal. The zero value means: no hooks, no filter and
// no depth bound.
type Options struct {
	// OnEnqueue fires once per vertex, at the moment it is marked visited.
	OnEnqueue func(id string, depth int)

	// OnVisit fires when the vertex leaves the queue. A non-nil error stops
	// the traversal; BFS returns it wrapped together with the partial result.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the hop count from the start; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor vetoes the route curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns the zero Options.
func DefaultOptions() Options { return Options{} }

// WithOnEnqueue installs the enqueue hook. A nil fn is ignored.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit installs the visit hook. A nil fn is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps vertices up to d hops away (inclusive); 0 lifts the
// bound. Negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a route filter. A nil fn is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the BFS tree rooted at the start vertex.
//
// Depth and Parent hold exactly the vertices in Order. When OnVisit aborts,
// vertices that were queued but never dequeued are left out of all three.
type BFSResult struct {
	Order  []string          // dequeue order
	Depth  map[string]int    // hops from the start
	Parent map[string]string // tree predecessor; the start has none
}

// PathTo walks Parent links back from dest and returns the fewest-hop route
// start → dest. ErrNotReached if dest is not in the tree.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{dest}
	for cur, ok := r.Parent[dest]; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// Layers groups Order by depth: Layers()[k] lists the vertices k hops away,
// in visit order.
func (r *BFSResult) Layers() [][]string {
	var out [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}

	return out
}
