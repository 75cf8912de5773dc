// Package dijkstra finds the cheapest fare between airports of a flightnet
// core.Graph.
//
// It complements pathcost: pathcost answers with the first route a
// depth-first search meets, dijkstra with the route of minimum total weight.
//
// Key features:
//
//   - Functional options: Source, WithReturnPath, WithMaxDistance, WithInfEdgeThreshold.
//   - Cheapest(g, from, to) convenience returning cost and route.
//   - Deterministic tie-breaking by matrix index.
//   - Runs on a core.Snapshot; never holds the graph lock while computing.
//
// Negative fares are rejected with ErrNegativeWeight.
package dijkstra
