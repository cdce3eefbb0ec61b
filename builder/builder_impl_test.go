// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, emission order, idempotence
// and weights.
package builder_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/graph"
)

// edgeKey identifies a directed adjacency entry by its endpoint IDs.
type edgeKey struct{ U, V string }

// edgeWeights maps every adjacency entry of g to its weight.
func edgeWeights(vs []*graph.Vertex[string]) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, v := range vs {
		for _, a := range v.Adjacencies() {
			m[edgeKey{v.Value(), a.Vertex.Value()}] = a.Weight
		}
	}

	return m
}

// ids returns the payloads of vs in order.
func ids(vs []*graph.Vertex[string]) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Value()
	}

	return out
}

func quietGraph() builder.BuilderOption {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return builder.WithGraphOptions(graph.WithLogger(logrus.NewEntry(logger)), graph.WithOutput(io.Discard))
}

// TestBuilders_Functional runs table-driven functional tests for each
// constructor on directed builds, where every emitted edge is one entry.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantV   int
		wantE   int
		present []edgeKey
	}{
		{"Path(4)", builder.Path(4), 4, 3, []edgeKey{{"0", "1"}, {"1", "2"}, {"2", "3"}}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, []edgeKey{{"0", "1"}, {"4", "0"}}},
		{"Star(4)", builder.Star(4), 4, 3, []edgeKey{{"Center", "1"}, {"Center", "3"}}},
		{"Complete(4)", builder.Complete(4), 4, 6, []edgeKey{{"0", "3"}, {"2", "3"}}},
		{"Grid(2x3)", builder.Grid(2, 3), 6, 7, []edgeKey{{"0,0", "0,1"}, {"0,0", "1,0"}, {"1,1", "1,2"}}},
		{"Tree(2,3)", builder.Tree(2, 3), 7, 6, []edgeKey{{"0", "1"}, {"0", "2"}, {"2", "5"}, {"2", "6"}}},
		{"Tree(3,1)", builder.Tree(3, 1), 1, 0, nil},
		{"RandomSparse_p0(5)", builder.RandomSparse(5, 0), 5, 0, nil},
		{"RandomSparse_p1(4)", builder.RandomSparse(4, 1), 4, 12, []edgeKey{{"3", "0"}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildWeightedGraph(tc.name, []builder.BuilderOption{builder.WithDirected(), quietGraph()}, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Len())

			edges := edgeWeights(g.Vertices())
			require.Len(t, edges, tc.wantE)
			for _, k := range tc.present {
				w, ok := edges[k]
				require.Truef(t, ok, "missing %s→%s", k.U, k.V)
				require.Equal(t, builder.DefaultEdgeWeight, w)
			}
		})
	}
}

func TestBuildGraph_UndirectedMirrorsEdges(t *testing.T) {
	g, err := builder.BuildGraph("path", []builder.BuilderOption{quietGraph()}, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, graph.Unweighted, g.Kind())

	want := "Adjacencies of path:\n" +
		"(0) -> {(1)}\n" +
		"(1) -> {(0), (2)}\n" +
		"(2) -> {(1)}\n"
	assert.Equal(t, want, g.Adjacencies())
}

func TestBuildGraph_ComposeIsIdempotent(t *testing.T) {
	g, err := builder.BuildGraph("twice", []builder.BuilderOption{builder.WithDirected(), quietGraph()},
		builder.Cycle(4), builder.Path(4), builder.Cycle(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, ids(g.Vertices()))
	assert.Len(t, edgeWeights(g.Vertices()), 4, "Path(4) is contained in Cycle(4)")
}

func TestBuildGraph_TreeOrder(t *testing.T) {
	g, err := builder.BuildGraph("tree", []builder.BuilderOption{builder.WithDirected(), quietGraph()}, builder.Tree(2, 3))
	require.NoError(t, err)

	root, ok := builder.Lookup(g, "0")
	require.True(t, ok)

	var seen []string
	action := func(v *graph.Vertex[string], _ any) (graph.Outcome, error) {
		seen = append(seen, v.Value())
		return graph.Outcome{}, nil
	}
	_, err = g.Explore(root, graph.WithAction(action), graph.WithComputeLevels())
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6"}, seen)

	leaf, _ := builder.Lookup(g, "6")
	lvl, _ := leaf.Level()
	assert.Equal(t, 3, lvl)

	assert.Equal(t, 13, builder.TreeSize(3, 3))
	assert.Equal(t, 4, builder.TreeSize(1, 4))
}

func TestBuildWeightedGraph_Weights(t *testing.T) {
	g, err := builder.BuildWeightedGraph("w",
		[]builder.BuilderOption{builder.WithConstantWeight(2.5), quietGraph()},
		builder.Path(3))
	require.NoError(t, err)

	for k, w := range edgeWeights(g.Vertices()) {
		assert.Equalf(t, 2.5, w, "%s→%s", k.U, k.V)
	}

	seeded := func() map[edgeKey]float64 {
		g, err := builder.BuildWeightedGraph("w",
			[]builder.BuilderOption{builder.WithSeed(9), builder.WithIntegerWeights(1, 9), quietGraph()},
			builder.Complete(5))
		require.NoError(t, err)
		return edgeWeights(g.Vertices())
	}
	a := seeded()
	assert.Equal(t, a, seeded(), "same seed, same weights")
	for _, w := range a {
		assert.GreaterOrEqual(t, w, 1.0)
		assert.LessOrEqual(t, w, 9.0)
	}

	// undirected builds store one weight for both directions
	assert.Equal(t, a[edgeKey{"0", "4"}], a[edgeKey{"4", "0"}])
}

func TestBuildWeightedGraph_ShortestPathOnGrid(t *testing.T) {
	g, err := builder.BuildWeightedGraph("grid", []builder.BuilderOption{quietGraph()}, builder.Grid(3, 3))
	require.NoError(t, err)

	dest, _ := builder.Lookup(g, builder.GridID(0, 0))
	require.NoError(t, g.ShortestPath(dest))

	far, _ := builder.Lookup(g, builder.GridID(2, 2))
	l, ok := far.Label()
	require.True(t, ok)
	assert.Equal(t, 4.0, l.Cost, "unit weights are labelled exactly")
}

func TestRandomSparse_Seeded(t *testing.T) {
	build := func(seed int64) []string {
		g, err := builder.BuildGraph("rs", []builder.BuilderOption{builder.WithSeed(seed), quietGraph()}, builder.RandomSparse(8, 0.4))
		require.NoError(t, err)
		return ids(g.Vertices())
	}
	assert.Equal(t, build(3), build(3))

	edges := func(seed int64) map[edgeKey]float64 {
		g, err := builder.BuildGraph("rs", []builder.BuilderOption{builder.WithSeed(seed), quietGraph()}, builder.RandomSparse(8, 0.4))
		require.NoError(t, err)
		return edgeWeights(g.Vertices())
	}
	assert.Equal(t, edges(3), edges(3))
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0x3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Tree(0,2)", builder.Tree(0, 2), nil, builder.ErrTooFewVertices},
		{"Tree(2,0)", builder.Tree(2, 0), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"Edges(empty endpoint)", builder.Edges(builder.Edge{From: "a"}), nil, builder.ErrConstructFailed},
		{"nil id scheme", builder.Path(2), []builder.BuilderOption{builder.WithIDScheme(nil)}, builder.ErrOptionViolation},
		{"negative weight", builder.Path(2), []builder.BuilderOption{builder.WithConstantWeight(-1)}, builder.ErrOptionViolation},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.name, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestEdges_ExplicitWeights(t *testing.T) {
	g, err := builder.BuildWeightedGraph("roads", []builder.BuilderOption{builder.WithConstantWeight(9), quietGraph()},
		builder.Edges(
			builder.Edge{From: "A", To: "B", Weight: 1},
			builder.Edge{From: "A", To: "C", Weight: 10},
			builder.Edge{From: "B", To: "C", Weight: 5},
		))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(g.Vertices()))
	assert.Equal(t, map[edgeKey]float64{
		{"A", "B"}: 1, {"B", "A"}: 1,
		{"A", "C"}: 10, {"C", "A"}: 10,
		{"B", "C"}: 5, {"C", "B"}: 5,
	}, edgeWeights(g.Vertices()))

	plain, err := builder.BuildGraph("plain", []builder.BuilderOption{builder.WithDirected(), quietGraph()},
		builder.Edges(builder.Edge{From: "x", To: "y", Weight: 3}))
	require.NoError(t, err)
	assert.Equal(t, map[edgeKey]float64{{"x", "y"}: 0}, edgeWeights(plain.Vertices()))
}

func TestBuildGraph_ReportsAllOptionErrors(t *testing.T) {
	_, err := builder.BuildGraph("bad", []builder.BuilderOption{
		builder.WithIDScheme(nil),
		builder.WithRand(nil),
		builder.WithWeightFn(nil),
		nil,
	}, builder.Path(2))
	require.ErrorIs(t, err, builder.ErrOptionViolation)

	for _, part := range []string{"WithIDScheme(nil)", "WithRand(nil)", "WithWeightFn(nil)", "nil BuilderOption"} {
		assert.Contains(t, err.Error(), part)
	}
}

func TestBuildGraph_CustomIDs(t *testing.T) {
	g, err := builder.BuildGraph("letters", []builder.BuilderOption{builder.WithLetterIDs(), quietGraph()}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(g.Vertices()))

	prefixed := func(idx int) string { return "v" + builder.DefaultIDFn(idx) }
	g, err = builder.BuildGraph("v", []builder.BuilderOption{builder.WithIDScheme(prefixed), quietGraph()}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{builder.CenterVertexID, "v1", "v2"}, ids(g.Vertices()))

	_, ok := builder.Lookup(g, "v0")
	assert.False(t, ok)
}

func ExampleBuildGraph() {
	g, err := builder.BuildGraph("star", []builder.BuilderOption{builder.WithDirected(), quietGraph()}, builder.Star(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(g.Adjacencies())
	// Output:
	// Adjacencies of star:
	// (Center) -> {(1), (2), (3)}
	// (1) -> {}
	// (2) -> {}
	// (3) -> {}
}

func ExampleBuildWeightedGraph() {
	g, _ := builder.BuildWeightedGraph("line",
		[]builder.BuilderOption{builder.WithLetterIDs(), builder.WithConstantWeight(3), quietGraph()},
		builder.Path(3))

	dest, _ := builder.Lookup(g, "C")
	_ = g.ShortestPath(dest)

	src, _ := builder.Lookup(g, "A")
	path, cost, _ := g.PathFrom(src)
	fmt.Println(path, cost)
	// Output:
	// [(A) (B) (C)] 6
}
