// File: methods_edges.go
// Role: Edge lifecycle & queries over the adjacency matrix.
//
// Policy:
//   - Every edge is undirected: both symmetric cells are written together.
//   - Self-loops are rejected; the diagonal stays zero.
//   - Weight 0 is reserved for "no edge" and is rejected by AddEdge.
//
// Concurrency:
//   - All state is guarded by mu.
package core

// endpoints resolves both vertex indices for op. Caller must hold mu.
// The self-reference check runs first, then v, then w.
func (g *Graph) endpoints(op, v, w string) (int, int, error) {
	if v == w {
		return 0, 0, &VertexError{Op: op, ID: v, Err: ErrSelfReference}
	}
	vi, ok := g.index[v]
	if !ok {
		return 0, 0, &VertexError{Op: op, ID: v, Err: ErrVertexNotFound}
	}
	wi, ok := g.index[w]
	if !ok {
		return 0, 0, &VertexError{Op: op, ID: w, Err: ErrVertexNotFound}
	}

	return vi, wi, nil
}

// AddEdge connects v and w with the given weight, replacing any previous weight.
//
// Implementation:
//   - Stage 1: Under the write lock, validate endpoints (ErrSelfReference,
//     ErrVertexNotFound naming the first missing vertex).
//   - Stage 2: Reject weight 0 (ErrZeroWeight).
//   - Stage 3: Write weight into both symmetric cells.
//
// Negative weights are stored as given.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddEdge(v, w string, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	vi, wi, err := g.endpoints("AddEdge", v, w)
	if err != nil {
		return err
	}
	if weight == noEdge {
		return ErrZeroWeight
	}

	g.weights[vi][wi] = weight
	g.weights[wi][vi] = weight

	return nil
}

// RemoveEdge clears the edge between v and w. Removing an absent edge is not
// an error as long as both vertices exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(v, w string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	vi, wi, err := g.endpoints("RemoveEdge", v, w)
	if err != nil {
		return err
	}

	g.weights[vi][wi] = noEdge
	g.weights[wi][vi] = noEdge

	return nil
}

// HasEdge reports whether v and w are directly connected.
// Missing vertices simply yield false.
func (g *Graph) HasEdge(v, w string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vi, ok := g.index[v]
	if !ok {
		return false
	}
	wi, ok := g.index[w]
	if !ok {
		return false
	}

	return g.weights[vi][wi] != noEdge
}

// Weight returns the weight of the edge v–w, or 0 when they are not adjacent.
// It fails only when a vertex is missing.
func (g *Graph) Weight(v, w string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vi, ok := g.index[v]
	if !ok {
		return 0, &VertexError{Op: "Weight", ID: v, Err: ErrVertexNotFound}
	}
	wi, ok := g.index[w]
	if !ok {
		return 0, &VertexError{Op: "Weight", ID: w, Err: ErrVertexNotFound}
	}

	return g.weights[vi][wi], nil
}

// Neighbors returns the IDs adjacent to id in increasing matrix-index order.
// Complexity: O(V).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return nil, &VertexError{Op: "Neighbors", ID: id, Err: ErrVertexNotFound}
	}

	out := make([]string, 0)
	for j, w := range g.weights[idx] {
		if w != noEdge {
			out = append(out, g.labels[j])
		}
	}

	return out, nil
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V²).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for i, row := range g.weights {
		for j := i + 1; j < len(row); j++ {
			if row[j] != noEdge {
				count++
			}
		}
	}

	return count
}
