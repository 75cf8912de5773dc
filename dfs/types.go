// Package dfs defines types and options for depth-first traversal,
// including a pre-order hook, neighbor filtering and basic diagnostics.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph. It also matches core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrVertexNotFound)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is popped for the first
	// time (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// FilterNeighbor, if non-nil, is called for each unvisited neighbor ID
	// before it is pushed. Return false to skip it.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns a DFSOptions struct with no hooks and no filtering.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is not pushed and is counted in
// DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were first popped (pre-order).
	Order []string

	// Depth maps each vertex ID to the depth of the stack entry that visited it.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex that pushed the entry which
	// visited it. The start vertex does not appear.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// StalePops counts stack entries discarded because their vertex had
	// already been visited by the time they were popped.
	StalePops int

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
