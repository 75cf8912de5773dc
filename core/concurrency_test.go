// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/flightnet/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddVertexAndEdge ensures concurrent AddVertex/AddEdge calls
// are safe and every spoke ends up attached to the hub.
func TestConcurrentAddVertexAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexX))

	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)
	errs := make(chan error, 2*NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			spoke := fmt.Sprintf("V%d", id)
			errs <- g.AddVertex(spoke)
			errs <- g.AddEdge(VertexX, spoke, int64(id+1))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)
	requireInvariants(t, g)
}

// TestConcurrentReadersAndWriters mixes snapshots, clones and removals.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < NReaders; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}
	for i := 1; i < NReaders; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(i)))
	}

	var wg sync.WaitGroup
	wg.Add(NReaders + NCloners)
	for i := 0; i < NReaders; i++ {
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				_ = g.RemoveVertex(fmt.Sprintf("V%d", id))
				return
			}
			for range g.Edges() {
			}
		}(i)
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()

	require.Equal(t, NReaders/2, g.VertexCount())
	requireInvariants(t, g)
}
