package graph_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/graph"
)

// quiet returns graph options that drop printed output and log entries.
func quiet() []graph.Option {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return []graph.Option{
		graph.WithLogger(logrus.NewEntry(logger)),
		graph.WithOutput(io.Discard),
	}
}

// recording returns graph options backed by a null logger at Debug level,
// plus the hook that captures its entries.
func recording() ([]graph.Option, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return []graph.Option{
		graph.WithLogger(logrus.NewEntry(logger)),
		graph.WithOutput(io.Discard),
	}, hook
}

// vertices returns n unweighted vertices carrying 1..n; index 0 is unused so
// that vs[i] carries i.
func vertices(n int) []*graph.Vertex[int] {
	vs := make([]*graph.Vertex[int], n+1)
	for i := 1; i <= n; i++ {
		vs[i] = graph.NewVertex(i)
	}

	return vs
}

// sampleTree builds
//
//	1 -> [2, 3, 4]
//	2 -> [5, 6]
//	3 -> [2]
//
// v3 -> v2 makes it a DAG rather than a tree, so visited marking matters.
func sampleTree(t *testing.T, opts ...graph.Option) (*graph.Graph[int], []*graph.Vertex[int]) {
	t.Helper()
	vs := vertices(6)
	require.NoError(t, vs[1].Append(vs[2], vs[3], vs[4]))
	require.NoError(t, vs[2].Append(vs[5], vs[6]))
	require.NoError(t, vs[3].Append(vs[2]))

	if len(opts) == 0 {
		opts = quiet()
	}
	g, err := graph.NewGraph("sample", vs[1:], opts...)
	require.NoError(t, err)

	return g, vs
}

// smallTree builds 1 -> [2, 3], 3 -> [4, 5]: levels 1, 2, 2, 3, 3.
func smallTree(t *testing.T) (*graph.Graph[int], []*graph.Vertex[int]) {
	t.Helper()
	vs := vertices(5)
	require.NoError(t, vs[1].Append(vs[2], vs[3]))
	require.NoError(t, vs[3].Append(vs[4], vs[5]))

	g, err := graph.NewGraph("small", vs[1:], quiet()...)
	require.NoError(t, err)

	return g, vs
}

// recorder returns an action that collects visited values and the slice it
// appends to.
func recorder() (graph.Action[int], *[]int) {
	seen := []int{}
	return func(v *graph.Vertex[int], _ any) (graph.Outcome, error) {
		seen = append(seen, v.Value())
		return graph.Outcome{}, nil
	}, &seen
}

// requireUnvisited asserts the visited-reset invariant.
func requireUnvisited[T any](t *testing.T, vs []*graph.Vertex[T]) {
	t.Helper()
	for _, v := range vs {
		if v == nil {
			continue
		}
		require.Falsef(t, v.Visited(), "%s left visited", v)
	}
}

// weighted links a and b in both directions with weight w.
func weighted(t *testing.T, a, b *graph.Vertex[string], w float64) {
	t.Helper()
	require.NoError(t, a.AppendWeighted(b, w))
	require.NoError(t, b.AppendWeighted(a, w))
}
