package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errArgCount       = errors.New("wrong number of arguments")
	errBadFare        = errors.New("fare must be an integer")
	errBadSize        = errors.New("size must be an integer")
)

// command is one script verb: its arity and the shell call it maps to.
// run receives the arguments already uppercased.
type command struct {
	args  int
	usage string
	run   func(s *shell, args []string) error
}

var commands = map[string]command{
	"addv": {1, "addv ID", func(s *shell, a []string) error { return s.addVertex(a[0]) }},
	"rmv":  {1, "rmv ID", func(s *shell, a []string) error { return s.removeVertex(a[0]) }},
	"adde": {3, "adde SRC DST FARE", func(s *shell, a []string) error {
		fare, err := strconv.ParseInt(a[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", errBadFare, a[2])
		}
		return s.addEdge(a[0], a[1], fare)
	}},
	"rme":      {2, "rme SRC DST", func(s *shell, a []string) error { return s.removeEdge(a[0], a[1]) }},
	"adj":      {0, "adj", func(s *shell, _ []string) error { return s.displayAdjacency() }},
	"table":    {0, "table", func(s *shell, _ []string) error { return s.displayTable() }},
	"edges":    {0, "edges", func(s *shell, _ []string) error { return s.displayEdges() }},
	"bfs":      {1, "bfs ID", func(s *shell, a []string) error { return s.bfs(a[0]) }},
	"dfs":      {1, "dfs ID", func(s *shell, a []string) error { return s.dfs(a[0]) }},
	"flight":   {2, "flight SRC DST", func(s *shell, a []string) error { return s.flight(a[0], a[1]) }},
	"cheapest": {2, "cheapest SRC DST", func(s *shell, a []string) error { return s.cheapest(a[0], a[1]) }},
	"stats":    {0, "stats", func(s *shell, _ []string) error { return s.stats() }},
	"backbone": {0, "backbone", func(s *shell, _ []string) error { return s.backbone() }},
	"tour":     {1, "tour ID", func(s *shell, a []string) error { return s.tour(a[0]) }},
	"gen": {2, "gen path|cycle|star|complete|grid N", func(s *shell, a []string) error {
		n, err := strconv.Atoi(a[1])
		if err != nil {
			return fmt.Errorf("%w: %q", errBadSize, a[1])
		}
		return s.generate(strings.ToLower(a[0]), n)
	}},
}

// runScript executes one command per line. Blank lines and lines starting
// with '#' are skipped. Arguments are uppercased. A malformed line stops the
// run with an error naming the line; graph rejections are printed like in
// the menu and do not stop it.
func (s *shell) runScript(r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		name := strings.ToLower(fields[0])
		args := fields[1:]

		cmd, ok := commands[name]
		if !ok {
			return errorf(lineNo, "%w %q", errUnknownCommand, fields[0])
		}
		if len(args) != cmd.args {
			return errorf(lineNo, "%w: usage %q", errArgCount, cmd.usage)
		}
		for i := range args {
			args[i] = strings.ToUpper(args[i])
		}

		s.log.Debug("script command", zap.Int("line", lineNo), zap.String("cmd", name), zap.Strings("args", args))
		if err := cmd.run(s, args); err != nil {
			return errorf(lineNo, "%s: %w", name, err)
		}
	}

	return sc.Err()
}

// errorf prefixes a script failure with its line number.
func errorf(line int, format string, a ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{line}, a...)...)
}
