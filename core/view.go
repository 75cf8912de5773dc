// File: view.go
// Role: Read-only views of a Graph: immutable snapshots and the lazy edge sequence.
//
// Concurrency:
//   - Snapshot copies state under the read lock; the copy needs no locking.
//   - Edges() takes a fresh snapshot each time it is ranged over, so user
//     code inside the loop may mutate the graph without deadlocking.
package core

import "iter"

// Snapshot is an immutable, index-addressed copy of a Graph.
// Traversal packages run on snapshots so that hooks never execute under mu.
type Snapshot struct {
	labels  []string
	index   map[string]int
	weights [][]int64
}

// Snapshot returns a deep copy of the current vertex sequence and matrix.
// Complexity: O(V²).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.labels)
	s := &Snapshot{
		labels:  make([]string, n),
		index:   make(map[string]int, n),
		weights: make([][]int64, n),
	}
	copy(s.labels, g.labels)
	for id, i := range g.index {
		s.index[id] = i
	}
	for i, row := range g.weights {
		s.weights[i] = make([]int64, n)
		copy(s.weights[i], row)
	}

	return s
}

// Len returns the number of vertices.
func (s *Snapshot) Len() int { return len(s.labels) }

// Label returns the vertex ID at matrix position i.
func (s *Snapshot) Label(i int) string { return s.labels[i] }

// Labels returns a copy of the vertex IDs in matrix order.
func (s *Snapshot) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)

	return out
}

// Index returns the matrix position of id.
func (s *Snapshot) Index(id string) (int, bool) {
	i, ok := s.index[id]

	return i, ok
}

// Weight returns the cell (i, j); 0 means no edge.
func (s *Snapshot) Weight(i, j int) int64 { return s.weights[i][j] }

// Adjacent reports whether matrix cell (i, j) holds an edge.
func (s *Snapshot) Adjacent(i, j int) bool { return s.weights[i][j] != noEdge }

// Edges yields every (source, destination) pair with a non-zero cell, scanning
// the matrix row by row. An undirected edge therefore appears twice, once per
// direction. Each range over the sequence observes the graph as of that range.
func (g *Graph) Edges() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		g.Snapshot().edges(yield)
	}
}

// Edges yields the snapshot's (source, destination) pairs in row-major order.
func (s *Snapshot) Edges() iter.Seq2[string, string] {
	return s.edges
}

func (s *Snapshot) edges(yield func(string, string) bool) {
	for i, row := range s.weights {
		for j, w := range row {
			if w == noEdge {
				continue
			}
			if !yield(s.labels[i], s.labels[j]) {
				return
			}
		}
	}
}
