// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Concurrency:
//   - Clone holds the read lock on the source only; Clear takes the write lock.
package core

// Clone returns a deep copy of the Graph: vertex order, lookup and matrix.
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	s := g.Snapshot()

	return &Graph{
		capHint: g.capHint,
		labels:  s.labels,
		index:   s.index,
		weights: s.weights,
	}
}

// Clear removes every vertex and edge.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.labels = make([]string, 0, g.capHint)
	g.index = make(map[string]int, g.capHint)
	g.weights = make([][]int64, 0, g.capHint)
}
