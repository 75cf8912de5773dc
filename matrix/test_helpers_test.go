// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightnet/core"
)

// route is a weighted undirected edge fixture.
type route struct {
	from, to string
	fare     int64
}

// buildGraph adds vertices in order, then routes.
func buildGraph(t *testing.T, vertices []string, routes ...route) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, r := range routes {
		require.NoError(t, g.AddEdge(r.from, r.to, r.fare))
	}

	return g
}

// failWriter rejects every write.
type failWriter struct{}

var errWrite = errors.New("write refused")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }
