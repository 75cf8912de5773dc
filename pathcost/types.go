// Package pathcost defines the result type, options and sentinel errors of the
// depth-first fare search.
//
// Errors (sentinel):
//
//	– ErrGraphNil         if the provided graph pointer is nil.
//	– ErrSelfReference    if source == destination (matches core.ErrSelfReference).
//	– ErrVertexNotFound   if source or destination is absent (matches core.ErrVertexNotFound).
//	– ErrNoPath           if the search exhausts every reachable vertex.
//	– ErrOptionViolation  for invalid options.
package pathcost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// Sentinel errors returned by Search.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Search.
	ErrGraphNil = errors.New("pathcost: graph is nil")

	// ErrSelfReference indicates that source and destination are the same vertex.
	ErrSelfReference = fmt.Errorf("pathcost: %w", core.ErrSelfReference)

	// ErrVertexNotFound indicates that source or destination is not in the graph.
	ErrVertexNotFound = fmt.Errorf("pathcost: %w", core.ErrVertexNotFound)

	// ErrNoPath is informational: destination is not reachable from source.
	// The graph is never modified by Search.
	ErrNoPath = errors.New("pathcost: no path available")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("pathcost: invalid option supplied")
)

// Option configures a Search.
type Option func(*Options)

// Options holds Search parameters.
type Options struct {
	// MaxDepth, if > 0, bounds the number of edges of an explored path.
	// Branches that would exceed it are not entered. 0 means no bound.
	MaxDepth int

	err error
}

// DefaultOptions returns unbounded search options.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth bounds the explored path length in edges.
//
//	d > 0: paths of at most d edges
//	d == 0: no bound
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result describes the route Search settled on.
type Result struct {
	// Source and Destination echo the query.
	Source      string
	Destination string

	// Cost is the sum of edge weights along Path.
	Cost int64

	// Direct is true when source and destination share an edge; Cost is then
	// that single edge weight.
	Direct bool

	// Path lists the vertices from Source to Destination inclusive.
	Path []string
}
