// Package flightnet is an in-memory airport and flight network: an
// undirected, fare-weighted graph stored as an adjacency matrix, with the
// traversals and route planners an airline desk needs.
//
// What is in the box
//
//	core/          thread-safe Graph (airports, routes, fares) and Snapshot views
//	bfs/, dfs/     traversal orders from an airport, insertion-order deterministic
//	pathcost/      "is there a flight, and what does it cost?" (first route found)
//	dijkstra/      cheapest fare and route between two airports
//	prim_kruskal/  cheapest backbone that still serves every airport
//	tsp/           round trip through every airport from a home airport
//	matrix/        adjacency text, edge list and lipgloss table renderers
//	builder/       synthetic networks (path, cycle, star, complete, grid, random)
//	cmd/flightnet  interactive menu and script runner
//	examples/      runnable scenarios
//
// Quick ASCII example:
//
//	JFK ──300── LAX
//	 │           │
//	120         250
//	 │           │
//	BOS         SFO
//
// is four airports and three routes: pathcost answers JFK→SFO with 550,
// bfs from BOS visits BOS, JFK, LAX, SFO.
//
//	go install github.com/katalvlaran/flightnet/cmd/flightnet@latest
package flightnet
