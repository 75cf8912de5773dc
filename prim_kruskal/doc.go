// Package prim_kruskal builds the cheapest backbone of a flight network: the
// minimum spanning tree of the undirected fare matrix held by core.Graph.
//
// What
//
//	A backbone is a set of V-1 routes that keeps every airport reachable
//	while the summed fare is as low as possible. It answers "which routes
//	must an airline keep if it wants to serve every airport for the least
//	money?"
//
// Algorithms
//
//   - Kruskal(g) sorts every route by fare and merges components with a
//     slice-backed union-find. Equal fares are taken in matrix row order.
//   - Prim(g, root) grows one tree from root using a container/heap queue
//     of crossing routes.
//   - Compute(g, opts...) selects either via WithMethod and WithRoot.
//
// Both return the same total fare on any connected network. The chosen
// routes may differ when fares tie.
//
// Errors
//
//   - ErrGraphNil        nil graph.
//   - ErrDisconnected    empty graph or more than one component.
//   - ErrEmptyRoot       Prim without a root.
//   - ErrVertexNotFound  Prim root missing (matches core.ErrVertexNotFound).
//   - ErrUnknownMethod   WithMethod given an unsupported value.
//
// Both algorithms read a core.Snapshot, so the graph may be mutated
// concurrently without affecting a running computation.
package prim_kruskal
