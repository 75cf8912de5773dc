// SPDX-License-Identifier: MIT
// Package core defines the central Graph type of flightnet: an undirected,
// weighted graph stored as a dense adjacency matrix, plus the sentinel errors
// every mutation and query reports.
//
// All core APIs take a single sync.RWMutex internally (mu): mutations use the
// write lock, queries and snapshots use the read lock.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrDuplicateVertex  - AddVertex on an ID that is already present.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrSelfReference    - edge operation with identical endpoints.
//	ErrZeroWeight       - AddEdge with weight 0 (0 encodes "no edge").
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called for an existing ID.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfReference indicates an edge operation whose endpoints are equal.
	ErrSelfReference = errors.New("core: source and destination are the same vertex")

	// ErrZeroWeight indicates AddEdge with weight 0, which the matrix cannot
	// tell apart from a missing edge. Use RemoveEdge instead.
	ErrZeroWeight = errors.New("core: edge weight must be non-zero")
)

// noEdge is the matrix cell value meaning "no edge".
const noEdge int64 = 0

// VertexError records a rejected operation together with the offending vertex.
// It unwraps to one of the sentinel errors above.
type VertexError struct {
	Op  string // operation name, e.g. "AddEdge"
	ID  string // vertex that caused the failure
	Err error  // sentinel
}

func (e *VertexError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.ID, e.Err)
}

func (e *VertexError) Unwrap() error { return e.Err }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n vertices. Values <= 0 are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is an undirected weighted graph backed by an adjacency matrix.
//
// labels holds vertex IDs in insertion order; the position of an ID in labels
// is its row and column in weights. index is the reverse lookup and is kept
// consistent with labels at all times.
//
// Invariants (hold whenever mu is not held for writing):
//   - len(weights) == len(labels) and every row has len(labels) cells.
//   - weights[i][j] == weights[j][i].
//   - weights[i][i] == 0.
type Graph struct {
	mu sync.RWMutex // guards labels, index, weights

	capHint int

	labels  []string
	index   map[string]int
	weights [][]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.labels = make([]string, 0, g.capHint)
	g.index = make(map[string]int, g.capHint)
	g.weights = make([][]int64, 0, g.capHint)

	return g
}
