// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: whole-graph statistics.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int   // number of vertices
	EdgeCount     int   // number of undirected edges
	IsolatedCount int   // vertices with no incident edge
	TotalWeight   int64 // sum of all edge weights, each edge counted once
}

// Stats returns a GraphStats snapshot.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan the upper triangle for edges and weights, and each full
//     row for isolation.
//
// Complexity:
//   - Time O(V²), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := &GraphStats{VertexCount: len(g.labels)}
	for i, row := range g.weights {
		isolated := true
		for j, w := range row {
			if w == noEdge {
				continue
			}
			isolated = false
			if j > i {
				st.EdgeCount++
				st.TotalWeight += w
			}
		}
		if isolated {
			st.IsolatedCount++
		}
	}

	return st
}
