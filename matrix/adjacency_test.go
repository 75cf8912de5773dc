// SPDX-License-Identifier: MIT

package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/matrix"
)

// TestWriteAdjacency_Layout pins the exact grid layout.
func TestWriteAdjacency_Layout(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"},
		route{"A", "B", 100}, route{"B", "C", 150})

	var sb strings.Builder
	require.NoError(t, matrix.WriteAdjacency(&sb, g))

	want := "   A    B    C    \n" +
		"A  0    100    0    \n" +
		"B  100    0    150    \n" +
		"C  0    150    0    \n"
	assert.Equal(t, want, sb.String())
}

// TestWriteAdjacency_Empty prints only the header line.
func TestWriteAdjacency_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, matrix.WriteAdjacency(&sb, core.NewGraph()))
	assert.Equal(t, "   \n", sb.String())
}

// TestWriteAdjacency_AfterRemoval follows the re-indexed order.
func TestWriteAdjacency_AfterRemoval(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"},
		route{"A", "B", 100}, route{"A", "C", -5})
	require.NoError(t, g.RemoveVertex("B"))

	var sb strings.Builder
	require.NoError(t, matrix.WriteAdjacency(&sb, g))
	assert.Equal(t, "   A    C    \nA  0    -5    \nC  -5    0    \n", sb.String())
}

// TestWriteEdges lists both directions in row-major order.
func TestWriteEdges(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"},
		route{"A", "B", 100}, route{"B", "C", 150}, route{"C", "D", 200})

	var sb strings.Builder
	require.NoError(t, matrix.WriteEdges(&sb, g))
	assert.Equal(t, "A->B\nB->A\nB->C\nC->B\nC->D\nD->C\n", sb.String())

	sb.Reset()
	require.NoError(t, matrix.WriteEdges(&sb, buildGraph(t, []string{"E"})))
	assert.Empty(t, sb.String())
}

// TestWriters_Errors covers nil arguments and writer failures.
func TestWriters_Errors(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, route{"A", "B", 1})
	var sb strings.Builder

	assert.ErrorIs(t, matrix.WriteAdjacency(nil, g), matrix.ErrNilWriter)
	assert.ErrorIs(t, matrix.WriteAdjacency(&sb, nil), matrix.ErrGraphNil)
	assert.ErrorIs(t, matrix.WriteEdges(nil, g), matrix.ErrNilWriter)
	assert.ErrorIs(t, matrix.WriteEdges(&sb, nil), matrix.ErrGraphNil)

	assert.ErrorIs(t, matrix.WriteAdjacency(failWriter{}, g), errWrite)
	assert.ErrorIs(t, matrix.WriteEdges(failWriter{}, g), errWrite)
}
