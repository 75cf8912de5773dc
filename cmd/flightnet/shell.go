package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/builder"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dfs"
	"github.com/katalvlaran/flightnet/dijkstra"
	"github.com/katalvlaran/flightnet/matrix"
	"github.com/katalvlaran/flightnet/pathcost"
	"github.com/katalvlaran/flightnet/prim_kruskal"
	"github.com/katalvlaran/flightnet/tsp"
)

// shell turns graph operations into the user-facing messages shared by the
// interactive menu and the script runner. Rejections are printed, never
// returned; only I/O failures come back as errors.
type shell struct {
	g         *core.Graph
	out       io.Writer
	log       *zap.Logger
	table     bool
	tableOpts []matrix.Option

	// synthetic networks
	rng       *rand.Rand
	fares     builder.FareFn
	generated int // airport codes handed out so far
}

func newShell(g *core.Graph, out io.Writer, log *zap.Logger, cfg Config, table bool) *shell {
	return &shell{
		g:         g,
		out:       out,
		log:       log,
		table:     table,
		tableOpts: []matrix.Option{matrix.WithBorder(cfg.TableStyle)},
		rng:       rand.New(rand.NewSource(cfg.Generator.Seed)),
		fares:     builder.UniformFare(cfg.Generator.FareMin, cfg.Generator.FareMax),
	}
}

func (s *shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// missing prints the not-found message for the vertex named in err, falling
// back to id when err carries no *core.VertexError.
func (s *shell) missing(err error, id string, dot bool) {
	var ve *core.VertexError
	if errors.As(err, &ve) {
		id = ve.ID
	}
	if dot {
		s.printf("Vertex %s does not exist.\n", id)
		return
	}
	s.printf("Vertex %s does not exist\n", id)
}

func (s *shell) addVertex(id string) error {
	err := s.g.AddVertex(id)
	switch {
	case errors.Is(err, core.ErrDuplicateVertex):
		s.println("Vertex already exist.")
	case errors.Is(err, core.ErrEmptyVertexID):
		s.println("Vertex name must not be empty.")
	case err != nil:
		return err
	default:
		s.log.Debug("vertex added", zap.String("id", id), zap.Int("vertices", s.g.VertexCount()))
	}

	return nil
}

func (s *shell) removeVertex(id string) error {
	err := s.g.RemoveVertex(id)
	switch {
	case errors.Is(err, core.ErrVertexNotFound):
		s.missing(err, id, false)
	case errors.Is(err, core.ErrEmptyVertexID):
		s.println("Vertex name must not be empty.")
	case err != nil:
		return err
	default:
		s.log.Debug("vertex removed", zap.String("id", id), zap.Int("vertices", s.g.VertexCount()))
	}

	return nil
}

func (s *shell) addEdge(src, dst string, fare int64) error {
	err := s.g.AddEdge(src, dst, fare)
	switch {
	case errors.Is(err, core.ErrSelfReference):
		s.printf("No edge allowed as both %s and %s are same.\n", src, dst)
	case errors.Is(err, core.ErrVertexNotFound):
		s.missing(err, src, true)
	case errors.Is(err, core.ErrZeroWeight):
		s.println("Edge weight must be non-zero; use remove edge instead.")
	case err != nil:
		return err
	default:
		s.printf("Added edges between %s and %s.\n", src, dst)
		s.log.Debug("edge added", zap.String("src", src), zap.String("dst", dst), zap.Int64("fare", fare))
	}

	return nil
}

func (s *shell) removeEdge(src, dst string) error {
	err := s.g.RemoveEdge(src, dst)
	switch {
	case errors.Is(err, core.ErrSelfReference):
		s.printf("No edge allowed as both %s and %s are same.\n", src, dst)
	case errors.Is(err, core.ErrVertexNotFound):
		s.missing(err, src, true)
	case err != nil:
		return err
	default:
		s.printf("Removed edges between %s and %s\n", src, dst)
		s.log.Debug("edge removed", zap.String("src", src), zap.String("dst", dst))
	}

	return nil
}

func (s *shell) displayAdjacency() error {
	if !s.table {
		return matrix.WriteAdjacency(s.out, s.g)
	}

	return s.displayTable()
}

func (s *shell) displayTable() error {
	out, err := matrix.RenderTable(s.g, s.tableOpts...)
	if err != nil {
		return err
	}
	if out != "" {
		s.println(out)
	}

	return nil
}

func (s *shell) displayEdges() error {
	return matrix.WriteEdges(s.out, s.g)
}

func (s *shell) bfs(start string) error {
	res, err := bfs.BFS(s.g, start)
	if errors.Is(err, core.ErrVertexNotFound) {
		s.missing(err, start, true)
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("BFS : [%s]\n", strings.Join(res.Order, ", "))

	return nil
}

func (s *shell) dfs(start string) error {
	res, err := dfs.DFS(s.g, start)
	if errors.Is(err, core.ErrVertexNotFound) {
		s.missing(err, start, true)
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("DFS : [%s]\n", strings.Join(res.Order, ", "))
	s.log.Debug("dfs done", zap.String("start", start), zap.Int("stalePops", res.StalePops))

	return nil
}

// flight reports the first route found by pathcost.
func (s *shell) flight(src, dst string) error {
	res, err := pathcost.Search(s.g, src, dst)
	switch {
	case errors.Is(err, core.ErrSelfReference):
		s.printf("No edge allowed as both %s and %s are same.\n", src, dst)
	case errors.Is(err, core.ErrVertexNotFound):
		s.missing(err, src, true)
	case errors.Is(err, pathcost.ErrNoPath):
		s.printf("No flight available from %s to %s.\n", src, dst)
	case err != nil:
		return err
	default:
		s.printf("Flight Price is: %d\n", res.Cost)
		s.log.Debug("flight found",
			zap.Strings("path", res.Path), zap.Bool("direct", res.Direct), zap.Int64("cost", res.Cost))
	}

	return nil
}

// cheapest reports the minimum fare found by dijkstra.
func (s *shell) cheapest(src, dst string) error {
	if src == dst {
		s.printf("No edge allowed as both %s and %s are same.\n", src, dst)
		return nil
	}
	cost, path, err := dijkstra.Cheapest(s.g, src, dst)
	switch {
	case errors.Is(err, core.ErrVertexNotFound):
		s.missing(err, src, true)
	case errors.Is(err, dijkstra.ErrUnreachable):
		s.printf("No flight available from %s to %s.\n", src, dst)
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		s.println("Cheapest fare needs non-negative fares.")
	case err != nil:
		return err
	default:
		s.printf("Cheapest Flight Price is: %d via [%s]\n", cost, strings.Join(path, ", "))
	}

	return nil
}

// backbone prints the minimum-fare spanning set of routes.
func (s *shell) backbone() error {
	routes, total, err := prim_kruskal.Kruskal(s.g)
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		s.println("No backbone serves every airport.")
		return nil
	}
	if err != nil {
		return err
	}
	legs := make([]string, len(routes))
	for i, r := range routes {
		legs[i] = fmt.Sprintf("%s-%s %d", r.From, r.To, r.Fare)
	}
	s.printf("Backbone : [%s]\n", strings.Join(legs, ", "))
	s.printf("Backbone fare is: %d\n", total)

	return nil
}

// tour prints a round trip from home through every airport.
func (s *shell) tour(home string) error {
	res, err := tsp.Solve(s.g, tsp.WithStart(home))
	switch {
	case errors.Is(err, core.ErrVertexNotFound):
		s.missing(err, home, true)
	case errors.Is(err, tsp.ErrTooFewVertices):
		s.println("Round trip needs at least 2 airports.")
	case errors.Is(err, tsp.ErrIncompleteGraph):
		s.println("No round trip covers every airport.")
	case errors.Is(err, tsp.ErrNegativeWeight):
		s.println("Round trip needs non-negative fares.")
	case errors.Is(err, tsp.ErrFareOverflow):
		s.println("Round trip fare is too large to add up.")
	case err != nil:
		return err
	default:
		s.printf("Tour : [%s]\n", strings.Join(res.Order, ", "))
		s.printf("Itinerary : [%s]\n", strings.Join(res.Itinerary, ", "))
		s.printf("Tour fare is: %d\n", res.Cost)
		s.log.Debug("tour planned", zap.Stringer("algorithm", res.Algorithm), zap.Int("legs", len(res.Itinerary)-1))
	}

	return nil
}

func (s *shell) stats() error {
	st := s.g.Stats()
	s.printf("Airports: %d, Routes: %d, Isolated: %d, Total fare: %d\n",
		st.VertexCount, st.EdgeCount, st.IsolatedCount, st.TotalWeight)

	return nil
}

// generators maps gen kinds to builder topologies. grid builds an n×n lattice.
var generators = map[string]func(n int) builder.Constructor{
	"path":     builder.Path,
	"cycle":    builder.Cycle,
	"star":     builder.Star,
	"complete": builder.Complete,
	"grid":     func(n int) builder.Constructor { return builder.Grid(n, n) },
}

// generate adds a synthetic network with fresh airport codes and random fares.
// The network is built on a scratch graph and merged only when every code is
// free, so a rejected gen leaves the graph untouched.
func (s *shell) generate(kind string, n int) error {
	mk, ok := generators[kind]
	if !ok {
		s.printf("Unknown network kind %q.\n", kind)
		return nil
	}

	codes := s.freshCodes()
	scratch := core.NewGraph()
	err := builder.Apply(scratch, []builder.BuilderOption{
		builder.WithIDScheme(codes.id),
		builder.WithRand(s.rng),
		builder.WithFareFn(s.fares),
	}, mk(n))
	if err == nil {
		err = s.merge(scratch.Snapshot())
	}
	switch {
	case errors.Is(err, builder.ErrTooFewVertices):
		s.printf("Network %s needs more than %d airports.\n", kind, n)
	case errors.Is(err, core.ErrDuplicateVertex):
		s.println("Generated airport codes clash with existing airports.")
	case err != nil:
		return err
	default:
		s.generated = codes.cursor
		s.printf("Generated %d airports and %d routes.\n", scratch.VertexCount(), scratch.EdgeCount())
		s.log.Debug("network generated", zap.String("kind", kind), zap.Int("n", n))
	}

	return nil
}

// codeSource hands out AirportCodeIDFn codes from cursor on, skipping codes
// the graph already holds. id(i) is stable for a given i.
type codeSource struct {
	g      *core.Graph
	cursor int
	codes  []string
}

func (s *shell) freshCodes() *codeSource {
	return &codeSource{g: s.g, cursor: s.generated}
}

func (c *codeSource) id(i int) string {
	for len(c.codes) <= i {
		code := builder.AirportCodeIDFn(c.cursor)
		c.cursor++
		if !c.g.HasVertex(code) {
			c.codes = append(c.codes, code)
		}
	}

	return c.codes[i]
}

// merge copies the airports and routes of snap into the shell graph. Any
// airport already present aborts the merge before the graph is touched.
func (s *shell) merge(snap *core.Snapshot) error {
	for _, id := range snap.Labels() {
		if s.g.HasVertex(id) {
			return &core.VertexError{Op: "merge", ID: id, Err: core.ErrDuplicateVertex}
		}
	}
	for _, id := range snap.Labels() {
		if err := s.g.AddVertex(id); err != nil {
			return err
		}
	}
	for i := 0; i < snap.Len(); i++ {
		for j := i + 1; j < snap.Len(); j++ {
			if !snap.Adjacent(i, j) {
				continue
			}
			if err := s.g.AddEdge(snap.Label(i), snap.Label(j), snap.Weight(i, j)); err != nil {
				return err
			}
		}
	}

	return nil
}
