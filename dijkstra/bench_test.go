package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/flightnet/builder"
	"github.com/katalvlaran/flightnet/dijkstra"
)

// BenchmarkDijkstra_RandomSparse measures single-source runs on a seeded
// random network.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithFareFn(builder.UniformFare(50, 900))},
		builder.RandomSparse(400, 0.05))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source("0")); err != nil {
			b.Fatal(err)
		}
	}
}
