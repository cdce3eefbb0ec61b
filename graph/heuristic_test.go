package graph_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/graph"
)

// distance scores a candidate by how far its value is from seek's.
func distance(c, _, seek *graph.Vertex[int], _ any) float64 {
	return math.Abs(float64(seek.Value() - c.Value()))
}

// flat scores every candidate the same, so each step is a tie-break.
func flat(_, _, _ *graph.Vertex[int], _ any) float64 { return 0 }

// trail returns a heuristic action that records the walk and stops on seek.
func trail() (graph.HeuristicAction[int], *[]int) {
	seen := []int{}
	return func(v, seek *graph.Vertex[int], _ any) (graph.Outcome, error) {
		seen = append(seen, v.Value())
		return graph.Outcome{Stop: v == seek, Value: len(seen)}, nil
	}, &seen
}

func TestExploreWithHeuristic_GreedyDescent(t *testing.T) {
	vs := vertices(9)
	require.NoError(t, vs[1].Append(vs[2], vs[5], vs[3]))
	require.NoError(t, vs[5].Append(vs[4], vs[7]))
	require.NoError(t, vs[7].Append(vs[6], vs[9], vs[8]))

	var out bytes.Buffer
	g, err := graph.NewGraph("hill", vs[1:], graph.WithOutput(&out), quiet()[0])
	require.NoError(t, err)

	res, err := g.ExploreWithHeuristic(vs[1], vs[9], distance)
	require.NoError(t, err)
	assert.True(t, res.Stop)
	assert.Same(t, vs[9], res.Value)
	assert.Equal(t, "  (1)\n  (5)\n  (7)\n  (9)\n", out.String())
}

func TestExploreWithHeuristic_Objective(t *testing.T) {
	vs := vertices(5)
	require.NoError(t, vs[1].Append(vs[2], vs[5]))

	g, err := graph.NewGraph("fork", vs[1:], quiet()...)
	require.NoError(t, err)

	value := func(c, _, _ *graph.Vertex[int], _ any) float64 { return float64(c.Value()) }

	action, seen := trail()
	_, err = g.ExploreWithHeuristic(vs[1], vs[5], value,
		graph.WithObjective(graph.Maximize), graph.WithHeuristicAction(action))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, *seen)

	action, seen = trail()
	_, err = g.ExploreWithHeuristic(vs[1], vs[2], value, graph.WithHeuristicAction(action))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, *seen)
}

func TestExploreWithHeuristic_DeadEndRestarts(t *testing.T) {
	vs := vertices(3)
	require.NoError(t, vs[1].Append(vs[2]))
	g, err := graph.NewGraph("dead", vs[1:], quiet()...)
	require.NoError(t, err)

	action, seen := trail()
	_, err = g.ExploreWithHeuristic(vs[1], vs[3], flat,
		graph.WithHeuristicAction(action), graph.WithMaxSteps(5))
	require.ErrorIs(t, err, graph.ErrStepLimit)
	assert.Equal(t, []int{1, 2, 1, 2, 1}, *seen)
}

func TestExploreWithHeuristic_CycleHitsStepLimit(t *testing.T) {
	vs := vertices(4)
	require.NoError(t, vs[1].Append(vs[2], vs[3]))
	require.NoError(t, vs[2].Append(vs[3], vs[4]))
	require.NoError(t, vs[3].Append(vs[1]))
	g, err := graph.NewGraph("loop", vs[1:], quiet()...)
	require.NoError(t, err)

	// 3 is nearer to 4 than 2 is, and 3 only leads back to 1.
	action, seen := trail()
	_, err = g.ExploreWithHeuristic(vs[1], vs[4], distance,
		graph.WithHeuristicAction(action), graph.WithMaxSteps(6))
	require.ErrorIs(t, err, graph.ErrStepLimit)
	assert.Equal(t, []int{1, 3, 1, 3, 1, 3}, *seen)
}

func TestExploreWithHeuristic_SeededTieBreaks(t *testing.T) {
	vs := vertices(5)
	require.NoError(t, vs[1].Append(vs[2], vs[3], vs[4]))
	g, err := graph.NewGraph("ties", vs[1:], quiet()...)
	require.NoError(t, err)

	walk := func(opts ...graph.HeuristicOption) []int {
		action, seen := trail()
		_, err := g.ExploreWithHeuristic(vs[1], vs[5], flat,
			append(opts, graph.WithHeuristicAction(action), graph.WithMaxSteps(80))...)
		require.ErrorIs(t, err, graph.ErrStepLimit)
		return *seen
	}

	first := walk(graph.WithSeed(42))
	require.Equal(t, []int{
		1, 4, 1, 4, 1, 4, 1, 2, 1, 3, 1, 3, 1, 2, 1, 4, 1, 4, 1, 3,
		1, 3, 1, 4, 1, 2, 1, 3, 1, 4, 1, 2, 1, 4, 1, 4, 1, 4, 1, 4,
		1, 3, 1, 2, 1, 3, 1, 2, 1, 3, 1, 4, 1, 4, 1, 3, 1, 3, 1, 4,
		1, 2, 1, 4, 1, 3, 1, 2, 1, 4, 1, 3, 1, 2, 1, 3, 1, 2, 1, 4,
	}, first, "seed 42 draws from math/rand are stable")
	assert.Equal(t, first, walk(graph.WithSeed(42)), "same seed, same walk")
	assert.Equal(t, first, walk(graph.WithRand(rand.New(rand.NewSource(42)))))
	assert.Equal(t, walk(), walk(graph.WithSeed(0)), "no seed uses the default seed")

	picked := map[int]bool{}
	for i, v := range first {
		if i%2 == 0 {
			require.Equal(t, 1, v, "every dead end returns to the start")
			continue
		}
		picked[v] = true
	}
	assert.Len(t, picked, 3, "all tied candidates get chosen over 40 draws")
}

func TestExploreWithHeuristic_Errors(t *testing.T) {
	g, vs := smallTree(t)

	_, err := g.ExploreWithHeuristic(vs[1], nil, flat)
	assert.ErrorIs(t, err, graph.ErrPreconditionViolation)

	_, err = g.ExploreWithHeuristic(vs[1], vs[2], nil)
	assert.ErrorIs(t, err, graph.ErrPreconditionViolation)

	_, err = g.ExploreWithHeuristic(graph.NewVertex(1), vs[2], flat)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	_, err = g.ExploreWithHeuristic(vs[1], vs[2], flat, graph.WithMaxSteps(-1))
	assert.ErrorIs(t, err, graph.ErrOptionViolation)

	_, err = g.ExploreWithHeuristic(vs[1], vs[2], flat, graph.WithObjective(graph.Objective(3)))
	assert.ErrorIs(t, err, graph.ErrOptionViolation)

	wrong := func(_, _ *graph.Vertex[string], _ any) (graph.Outcome, error) { return graph.Outcome{}, nil }
	_, err = g.ExploreWithHeuristic(vs[1], vs[2], flat, graph.WithHeuristicAction(wrong))
	assert.ErrorIs(t, err, graph.ErrOptionViolation)
}
