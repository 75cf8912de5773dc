// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightnet/builder"
	"github.com/katalvlaran/flightnet/core"
)

func edgeList(g *core.Graph) [][2]string {
	var out [][2]string
	for u, v := range g.Edges() {
		if u < v {
			out = append(out, [2]string{u, v})
		}
	}

	return out
}

// TestTopologies checks vertex and edge counts for each constructor.
func TestTopologies(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
		firstID  string
	}{
		{"Path", builder.Path(4), 4, 3, "0"},
		{"Cycle", builder.Cycle(5), 5, 5, "0"},
		{"Star", builder.Star(5), 5, 4, builder.HubID},
		{"Complete", builder.Complete(6), 6, 15, "0"},
		{"Grid", builder.Grid(2, 3), 6, 7, "0"},
		{"RandomSparseFull", builder.RandomSparse(4, 1), 4, 6, "0"},
		{"RandomSparseEmpty", builder.RandomSparse(4, 0), 4, 0, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.firstID, g.Vertices()[0])
			require.NoError(t, g.Validate())
		})
	}
}

// TestGrid_Layout pins row-major IDs and 4-neighborhood routes.
func TestGrid_Layout(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("G"))},
		builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"G0", "G1", "G2", "G3"}, g.Vertices())
	assert.Equal(t, [][2]string{{"G0", "G1"}, {"G0", "G2"}, {"G1", "G3"}, {"G2", "G3"}}, edgeList(g))
}

// TestFares covers constant, uniform and seeded fares.
func TestFares(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithFareFn(builder.ConstantFare(250))},
		builder.Cycle(3))
	require.NoError(t, err)
	assert.EqualValues(t, 750, g.Stats().TotalWeight)

	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithFareFn(builder.UniformFare(50, 500)),
	}
	a, err := builder.BuildGraph(nil, opts, builder.Complete(8))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithFareFn(builder.UniformFare(50, 500)),
	}, builder.Complete(8))
	require.NoError(t, err)

	for u, v := range a.Edges() {
		wa, err := a.Weight(u, v)
		require.NoError(t, err)
		wb, err := b.Weight(u, v)
		require.NoError(t, err)
		assert.Equal(t, wa, wb)
		assert.GreaterOrEqual(t, wa, int64(50))
		assert.LessOrEqual(t, wa, int64(500))
	}

	assert.EqualValues(t, 1, builder.ConstantFare(0)(nil))
	assert.EqualValues(t, 7, builder.UniformFare(7, 3)(nil))
	assert.EqualValues(t, 1, builder.UniformFare(-4, 1)(nil))
}

// TestRandomSparse_Deterministic gives equal networks for equal seeds.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	assert.Equal(t, edgeList(build(9)), edgeList(build(9)))
}

// TestErrors covers every sentinel.
func TestErrors(t *testing.T) {
	cases := []struct {
		name  string
		bopts []builder.BuilderOption
		con   builder.Constructor
		want  error
	}{
		{"PathTooSmall", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"CycleTooSmall", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"StarTooSmall", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"CompleteTooSmall", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"GridTooSmall", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Probability", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"NeedRand", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"NilIDScheme", []builder.BuilderOption{builder.WithIDScheme(nil)}, builder.Path(2), builder.ErrOptionViolation},
		{"NilRand", []builder.BuilderOption{builder.WithRand(nil)}, builder.Path(2), builder.ErrOptionViolation},
		{"NilFare", []builder.BuilderOption{builder.WithFareFn(nil)}, builder.Path(2), builder.ErrOptionViolation},
		{"NilConstructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.con)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestApply adds to an existing graph and reports ID clashes.
func TestApply(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("JFK"))

	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("S"))}, builder.Star(3)))
	assert.Equal(t, []string{"JFK", builder.HubID, "S1", "S2"}, g.Vertices())

	err := builder.Apply(g, nil, builder.Star(2))
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrGraphNil)
}

// TestIDSchemes pins the ID functions.
func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "12", builder.DefaultIDFn(12))
	assert.Equal(t, "X7", builder.PrefixIDFn("X")(7))

	cases := map[int]string{0: "AAA", 1: "AAB", 25: "AAZ", 26: "ABA", 17575: "ZZZ", 17576: "BAAA"}
	for idx, want := range cases {
		assert.Equal(t, want, builder.AirportCodeIDFn(idx), "idx %d", idx)
	}
}
