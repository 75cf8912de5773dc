// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dijkstra"
	"github.com/katalvlaran/flightnet/pathcost"
)

// triangle builds A–B(1), B–C(2), A–C(5).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

// TestDijkstra_Validation covers the documented validation order.
func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := triangle(t)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	require.NoError(t, g.AddEdge("A", "B", -3))
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestDijkstra_Triangle checks distances and predecessors.
func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, prev)

	dist, prev, err = dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.EqualValues(t, 3, dist["C"])
}

// TestDijkstra_Thresholds covers MaxDistance and InfEdgeThreshold.
func TestDijkstra_Thresholds(t *testing.T) {
	g := triangle(t)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.EqualValues(t, 1, dist["B"])
	assert.EqualValues(t, int64(math.MaxInt64), dist["C"])

	// B–C(2) becomes a wall; C is reached directly for 5.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.EqualValues(t, 5, dist["C"])
}

// TestCheapest covers the convenience wrapper.
func TestCheapest(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex("E"))

	cost, path, err := dijkstra.Cheapest(g, "A", "C")
	require.NoError(t, err)
	assert.EqualValues(t, 3, cost)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	cost, path, err = dijkstra.Cheapest(g, "A", "A")
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []string{"A"}, path)

	_, _, err = dijkstra.Cheapest(g, "A", "E")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, _, err = dijkstra.Cheapest(g, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// TestCheapest_FareOverflow keeps a fare sum past MaxInt64 from wrapping into
// a negative "cheapest" cost.
func TestCheapest_FareOverflow(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", math.MaxInt64-1))
	require.NoError(t, g.AddEdge("B", "C", 10))

	cost, path, err := dijkstra.Cheapest(g, "A", "B")
	require.NoError(t, err)
	assert.EqualValues(t, int64(math.MaxInt64-1), cost)
	assert.Equal(t, []string{"A", "B"}, path)

	_, _, err = dijkstra.Cheapest(g, "A", "C")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)
	assert.EqualValues(t, 10, dist["B"])
	assert.EqualValues(t, int64(math.MaxInt64), dist["A"])
}

// TestCheapest_VersusFirstFound contrasts the minimum fare with the first
// route a depth-first cost search reports.
func TestCheapest_VersusFirstFound(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"S", "X", "Y", "D"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("S", "X", 1))
	require.NoError(t, g.AddEdge("X", "D", 100))
	require.NoError(t, g.AddEdge("S", "Y", 1))
	require.NoError(t, g.AddEdge("Y", "D", 1))

	first, err := pathcost.Search(g, "S", "D")
	require.NoError(t, err)
	assert.EqualValues(t, 101, first.Cost)

	cost, path, err := dijkstra.Cheapest(g, "S", "D")
	require.NoError(t, err)
	assert.EqualValues(t, 2, cost)
	assert.Equal(t, []string{"S", "Y", "D"}, path)
}
