// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order, which is also matrix order.
//
// Concurrency:
//   - All state is guarded by mu.
package core

// AddVertex appends a new vertex with no incident edges.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject an existing ID (ErrDuplicateVertex).
//   - Stage 3: Append the label, register its index, add one zero column to
//     every existing row and a fresh zero row.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrDuplicateVertex: if id is already present; the graph is not touched.
//
// Complexity:
//   - Time O(V) for widening existing rows, Space O(V²) overall.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[id]; exists {
		return &VertexError{Op: "AddVertex", ID: id, Err: ErrDuplicateVertex}
	}

	g.labels = append(g.labels, id)
	n := len(g.labels)
	g.index[id] = n - 1

	// widen existing rows by one "no edge" column
	for i := range g.weights {
		g.weights[i] = append(g.weights[i], noEdge)
	}
	g.weights = append(g.weights, make([]int64, n))

	return nil
}

// RemoveVertex deletes a vertex together with every incident edge.
//
// Implementation:
//   - Stage 1: Under the write lock, resolve the index (ErrVertexNotFound).
//   - Stage 2: Drop its row, then its column from each remaining row.
//   - Stage 3: Drop the label and renumber the lookup for every vertex that
//     moved one position left.
//
// Complexity:
//   - Time O(V) row operations (O(V²) cell moves in the worst case), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.index[id]
	if !ok {
		return &VertexError{Op: "RemoveVertex", ID: id, Err: ErrVertexNotFound}
	}

	g.weights = append(g.weights[:idx], g.weights[idx+1:]...)
	for i, row := range g.weights {
		g.weights[i] = append(row[:idx], row[idx+1:]...)
	}

	g.labels = append(g.labels[:idx], g.labels[idx+1:]...)
	delete(g.index, id)
	for i := idx; i < len(g.labels); i++ {
		g.index[g.labels[i]] = i
	}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the matrix position of id.
// The position changes when an earlier vertex is removed.
func (g *Graph) IndexOf(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]

	return idx, ok
}

// Vertices returns a copy of the vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}
