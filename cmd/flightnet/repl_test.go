package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodbye = "Thank You for using our Application!!!\n"

// TestREPL_ChainScenario builds the chain through the menu and queries it.
func TestREPL_ChainScenario(t *testing.T) {
	sh, out := newTestShell(t)
	input := strings.Join([]string{
		"1", "a", "1", "b", "1", "c", "1", "d",
		"3", "a b 100",
		"3", "b c 150",
		"3", "c", "d", "200", // tokens may span lines
		"7", "a",
		"8", "c",
		"9", "a d",
		"4", "b c",
		"9", "a d",
		"2", "b",
		"6",
		"0",
	}, "\n")

	require.NoError(t, sh.repl(strings.NewReader(input)))
	got := out.String()

	assert.Contains(t, got, "Added edges between A and B.\n")
	assert.Contains(t, got, "Added edges between C and D.\n")
	assert.Contains(t, got, "BFS : [A, B, C, D]\n")
	assert.Contains(t, got, "DFS : [C, B, A, D]\n")
	assert.Contains(t, got, "Flight Price is: 450\n")
	assert.Contains(t, got, "Removed edges between B and C\n")
	assert.Contains(t, got, "No flight available from A to D.\n")
	assert.Contains(t, got, "C->D\nD->C\n")
	assert.True(t, strings.HasSuffix(got, "Enter your choice:\n"+goodbye))
	assert.Equal(t, []string{"A", "C", "D"}, sh.g.Vertices())
}

// TestREPL_Menu checks the banner and the handling of bad choices.
func TestREPL_Menu(t *testing.T) {
	sh, out := newTestShell(t)

	require.NoError(t, sh.repl(strings.NewReader("abc\n42\n0\n")))
	got := out.String()

	assert.True(t, strings.HasPrefix(got, menuRule+"\n"+menuTitle+"\n"+menuRule+"\n1.AddVertex\n"))
	assert.Equal(t, 2, strings.Count(got, "Wrong Choice, Enter again!!!\n"))
	assert.Equal(t, 3, strings.Count(got, "Enter your choice:\n"))
	assert.Equal(t, 1, strings.Count(got, goodbye))
}

// TestREPL_EndOfInput exits cleanly when stdin runs out, even mid-command.
func TestREPL_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "1\nJFK\n", "3\nJFK LAX\n", "1\n"} {
		sh, out := newTestShell(t)
		require.NoError(t, sh.repl(strings.NewReader(input)), "input %q", input)
		assert.True(t, strings.HasSuffix(out.String(), goodbye), "input %q", input)
	}
}

// TestREPL_BadFare keeps the loop running after a non-numeric fare.
func TestREPL_BadFare(t *testing.T) {
	sh, out := newTestShell(t)
	require.NoError(t, sh.repl(strings.NewReader("1\nA\n1\nB\n3\nA B cheap\n0\n")))
	assert.Contains(t, out.String(), "Air fare must be an integer, got \"cheap\".\n")
	assert.False(t, sh.g.HasEdge("A", "B"))
}

// TestTokenScanner covers token, line and skipLine interplay.
func TestTokenScanner(t *testing.T) {
	ts := newTokenScanner(strings.NewReader("1 rest of line\n  new york \nx\ny z\n"))

	tok, ok := ts.token()
	require.True(t, ok)
	assert.Equal(t, "1", tok)
	ts.skipLine()

	line, ok := ts.line()
	require.True(t, ok)
	assert.Equal(t, "new york", line)

	toks, ok := ts.tokens(2)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, toks)

	_, ok = ts.token()
	assert.False(t, ok, "z was dropped with the rest of its line")
}
