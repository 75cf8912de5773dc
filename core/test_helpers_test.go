// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for flightnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Centralize the structural invariant check every mutation test relies on.

package core_test

import (
	"testing"

	"github.com/katalvlaran/flightnet/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0
	Weight5   = 5
	Weight7   = 7
	Weight100 = 100
	Weight150 = 150
	Weight200 = 200
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// buildChain RETURNS the A–B(100), B–C(150), C–D(200) route chain.
func buildChain(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{VertexA, VertexB, VertexC, VertexD} {
		require.NoError(t, g.AddVertex(id), "AddVertex(%s)", id)
	}
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight100))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight150))
	require.NoError(t, g.AddEdge(VertexC, VertexD, Weight200))

	return g
}

// requireInvariants FAILS the test unless g passes its structural self-check.
func requireInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	require.NoError(t, g.Validate(), "Validate")
}
