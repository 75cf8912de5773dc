package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/core"
)

// ExampleBFS lists airports in hop order from JFK.
func ExampleBFS() {
	g := core.NewGraph()
	for _, code := range []string{"JFK", "LAX", "ORD", "SFO", "ANC"} {
		_ = g.AddVertex(code)
	}
	_ = g.AddEdge("JFK", "LAX", 300)
	_ = g.AddEdge("JFK", "ORD", 150)
	_ = g.AddEdge("LAX", "SFO", 90)

	res, err := bfs.BFS(g, "JFK")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo("SFO")
	fmt.Println(path)

	// Output:
	// [JFK LAX ORD SFO]
	// [JFK LAX SFO]
}
