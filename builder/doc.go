// Package builder generates synthetic airport networks on a core.Graph.
//
// Topologies: Path, Cycle, Star (hub "HUB"), Complete, Grid and RandomSparse.
// Compose them with BuildGraph, or add them to an existing graph with Apply:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{
//			builder.WithIDScheme(builder.AirportCodeIDFn),
//			builder.WithSeed(7),
//			builder.WithFareFn(builder.UniformFare(50, 500)),
//		},
//		builder.Grid(4, 4),
//	)
//
// Vertex IDs come from an IDFn (decimal, airport-code or prefixed), fares from
// a FareFn. Output is deterministic for equal inputs and seeds. Invalid
// options surface as ErrOptionViolation instead of panicking.
package builder
