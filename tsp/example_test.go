package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/tsp"
)

// ExampleSolve plans a round trip on a chain: there is no SFO–JFK flight, so
// the way home is flown back through DEN.
func ExampleSolve() {
	g := core.NewGraph()
	for _, code := range []string{"JFK", "DEN", "SFO"} {
		_ = g.AddVertex(code)
	}
	_ = g.AddEdge("JFK", "DEN", 120)
	_ = g.AddEdge("DEN", "SFO", 200)

	tour, err := tsp.Solve(g, tsp.WithStart("JFK"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tour.Order, tour.Cost)
	fmt.Println(tour.Itinerary)
	// Output:
	// [JFK DEN SFO JFK] 640
	// [JFK DEN SFO DEN JFK]
}
