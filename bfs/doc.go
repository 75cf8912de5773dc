// Package bfs provides breadth-first traversal over a flightnet core.Graph.
//
// What
//
//   - Explore airports in non-decreasing hop count from a start airport.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks: OnEnqueue (vertex marked visited) and OnVisit (may abort).
//   - WithFilterNeighbor prunes individual routes; WithMaxDepth bounds hops.
//
// Determinism
//
//	Neighbors are scanned along the adjacency-matrix row, i.e. in vertex
//	insertion order, so the visit sequence is fully reproducible.
//	A vertex is marked visited at enqueue time, so it is enqueued at most once.
//
// Consistency
//
//	BFS runs on a core.Snapshot taken at the start of the call; concurrent
//	mutations of the graph are not observed and hooks run without any lock held.
//
// Complexity (V = |Vertices|)
//
//   - Time:   O(V²)  one matrix row scan per visited vertex
//   - Memory: O(V)   queue, visited flags, result maps
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if the start vertex is missing (matches core.ErrVertexNotFound).
//   - ErrOptionViolation      for invalid options.
//   - any error returned by OnVisit, wrapped.
package bfs
