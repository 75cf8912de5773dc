package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/flightnet/core"
)

// newTestShell returns a shell over an empty graph and its output buffer.
func newTestShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}

	return newShell(core.NewGraph(), out, zaptest.NewLogger(t), DefaultConfig(), false), out
}

// chainShell seeds A–B(100), B–C(150), C–D(200) and clears the output.
func chainShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	sh, out := newTestShell(t)
	require.NoError(t, applySeed(sh.g, SeedConfig{
		Airports: []string{"A", "B", "C", "D"},
		Routes: []RouteConfig{
			{From: "A", To: "B", Fare: 100},
			{From: "B", To: "C", Fare: 150},
			{From: "C", To: "D", Fare: 200},
		},
	}))
	out.Reset()

	return sh, out
}
