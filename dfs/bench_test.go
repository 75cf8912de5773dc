package dfs_test

import (
	"testing"

	"github.com/katalvlaran/flightnet/builder"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dfs"
)

// BenchmarkDFS_Complete measures DFS on a complete graph, the worst case for
// stale stack entries.
func BenchmarkDFS_Complete(b *testing.B) {
	const n = 200
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(n)},
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("V"))},
		builder.Complete(n),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "V0")
	}
}
