// Package core provides the thread-safe, in-memory flight network graph used by
// every other flightnet package.
//
// The Graph G = (V,E) is undirected and weighted and is stored as a dense
// adjacency matrix:
//
//   - labels:  vertex IDs in insertion order; position == matrix index
//   - index:   vertex ID → position, rebuilt for shifted vertices on removal
//   - weights: V×V int64 matrix, weights[i][j] == weights[j][i], 0 == no edge
//
// Vertices are typically airport codes ("JFK", "LAX") and weights are fares.
//
//	JFK ──300── LAX
//	 │           │
//	120         250
//	 │           │
//	BOS         SFO
//
// Rejected operations never mutate the graph. They return a sentinel error
// (ErrDuplicateVertex, ErrVertexNotFound, ErrSelfReference, ErrZeroWeight,
// ErrEmptyVertexID), usually wrapped in a *VertexError that names the
// offending vertex:
//
//	err := g.AddEdge("JFK", "ORD", 150)
//	var ve *core.VertexError
//	if errors.As(err, &ve) && errors.Is(err, core.ErrVertexNotFound) {
//		fmt.Println("missing:", ve.ID)
//	}
//
// Concurrency: a single sync.RWMutex guards the whole structure. Algorithms in
// bfs, dfs and pathcost work on a Snapshot, so they observe one consistent
// state even while other goroutines mutate the graph.
//
// Complexity:
//
//	AddVertex, RemoveVertex       O(V)
//	AddEdge, RemoveEdge, Weight   O(1)
//	Neighbors                     O(V)
//	Snapshot, Clone, EdgeCount    O(V²)
package core
