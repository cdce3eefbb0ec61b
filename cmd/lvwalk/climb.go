package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/graph"
	"github.com/katalvlaran/lvwalk/puzzle"
)

var errUnknownHeuristic = errors.New("unknown heuristic (want misplaced or manhattan)")

func newClimbCmd(a *app) *cobra.Command {
	var (
		seed      int64
		maxSteps  int
		heuristic string
	)

	cmd := &cobra.Command{
		Use:   "climb",
		Short: "Hill-climb the 8-puzzle tree towards its goal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runClimb(seed, maxSteps, heuristic)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "tie-break seed (0 selects the default seed)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 100, "give up after this many boards (0 = unbounded)")
	cmd.Flags().StringVar(&heuristic, "heuristic", "misplaced", "misplaced or manhattan")

	return cmd
}

func (a *app) runClimb(seed int64, maxSteps int, name string) error {
	var h graph.Heuristic[puzzle.Board]
	switch name {
	case "misplaced":
		h = puzzle.MisplacedHeuristic()
	case "manhattan":
		h = puzzle.ManhattanHeuristic()
	default:
		return fmt.Errorf("%w: %q", errUnknownHeuristic, name)
	}

	tree, err := puzzle.NewTree(a.graphOptions(true)...)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.st.Title(fmt.Sprintf("Climbing to %s by %s distance:", tree.Goal.Value(), name)))
	steps := 0
	count := func(v, seek *graph.Vertex[puzzle.Board], _ any) (graph.Outcome, error) {
		steps++
		fmt.Fprintf(a.out, "  %s %s\n", v, a.st.Muted(fmt.Sprintf("h=%g", h(v, nil, seek, nil))))
		return graph.Outcome{Stop: v == seek, Value: v}, nil
	}

	_, err = tree.Graph.ExploreWithHeuristic(tree.Root, tree.Goal, h,
		graph.WithSeed(seed),
		graph.WithMaxSteps(maxSteps),
		graph.WithHeuristicAction(graph.HeuristicAction[puzzle.Board](count)),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n", a.st.OK(fmt.Sprintf("Goal reached in %d steps.", steps)))

	return nil
}
