package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	menuRule  = "------------------------------------------------------------------"
	menuTitle = "***                            MENU                            ***"

	// choiceInvalid replaces any non-numeric menu input.
	choiceInvalid = 10
)

var menuItems = []string{
	"1.AddVertex",
	"2.removeVertex",
	"3.AddEdge",
	"4.removeEdge",
	"5.DisplayAdjacencyList",
	"6.DisplayEdges",
	"7.BFS",
	"8.DFS",
	"9.Check Flight availability",
	"0.Exit",
	"Enter your choice:",
}

// tokenScanner reads whitespace-separated tokens that may span lines, and
// whole lines, from the same input.
type tokenScanner struct {
	sc      *bufio.Scanner
	pending []string
}

func newTokenScanner(r io.Reader) *tokenScanner {
	return &tokenScanner{sc: bufio.NewScanner(r)}
}

// token returns the next token, reading further lines as needed.
func (t *tokenScanner) token() (string, bool) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			return "", false
		}
		t.pending = strings.Fields(t.sc.Text())
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]

	return tok, true
}

// skipLine drops what is left of the current line.
func (t *tokenScanner) skipLine() { t.pending = nil }

// line returns the next full input line, trimmed.
func (t *tokenScanner) line() (string, bool) {
	if !t.sc.Scan() {
		return "", false
	}

	return strings.TrimSpace(t.sc.Text()), true
}

// tokens reads n tokens and drops the rest of the last line.
func (t *tokenScanner) tokens(n int) ([]string, bool) {
	out := make([]string, 0, n)
	for len(out) < n {
		tok, ok := t.token()
		if !ok {
			return nil, false
		}
		out = append(out, tok)
	}
	t.skipLine()

	return out, true
}

func (s *shell) printMenu() {
	s.println(menuRule)
	s.println(menuTitle)
	s.println(menuRule)
	for _, item := range menuItems {
		s.println(item)
	}
}

// repl runs the numbered menu until choice 0 or end of input.
// Identifiers are uppercased before they reach the graph.
func (s *shell) repl(in io.Reader) error {
	ts := newTokenScanner(in)
	for {
		s.printMenu()

		tok, ok := ts.token()
		if !ok {
			break
		}
		choice := choiceInvalid
		if n, err := strconv.Atoi(tok); err == nil {
			choice = n
		}
		ts.skipLine()
		if choice == 0 {
			break
		}

		more, err := s.dispatch(choice, ts)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	s.println("Thank You for using our Application!!!")

	return ts.sc.Err()
}

// dispatch runs one menu choice. more is false once input is exhausted.
func (s *shell) dispatch(choice int, ts *tokenScanner) (more bool, err error) {
	switch choice {
	case 1, 2, 7, 8:
		id, ok := ts.line()
		if !ok {
			return false, nil
		}
		id = strings.ToUpper(id)
		switch choice {
		case 1:
			return true, s.addVertex(id)
		case 2:
			return true, s.removeVertex(id)
		case 7:
			return true, s.bfs(id)
		default:
			return true, s.dfs(id)
		}

	case 3:
		args, ok := ts.tokens(3)
		if !ok {
			return false, nil
		}
		fare, perr := strconv.ParseInt(args[2], 10, 64)
		if perr != nil {
			s.printf("Air fare must be an integer, got %q.\n", args[2])
			return true, nil
		}
		return true, s.addEdge(strings.ToUpper(args[0]), strings.ToUpper(args[1]), fare)

	case 4, 9:
		args, ok := ts.tokens(2)
		if !ok {
			return false, nil
		}
		src, dst := strings.ToUpper(args[0]), strings.ToUpper(args[1])
		if choice == 4 {
			return true, s.removeEdge(src, dst)
		}
		return true, s.flight(src, dst)

	case 5:
		return true, s.displayAdjacency()

	case 6:
		return true, s.displayEdges()

	default:
		s.println("Wrong Choice, Enter again!!!")
		return true, nil
	}
}
