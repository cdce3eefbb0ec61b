package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/graph"
	"github.com/katalvlaran/lvwalk/puzzle"
)

// seekMethod is one row of the puzzle comparison.
type seekMethod struct {
	name string
	opts []graph.ExploreOption
}

// seekResult is the outcome of one seekMethod.
type seekResult struct {
	name   string
	visits int
	found  bool
}

func newPuzzleCmd(a *app) *cobra.Command {
	var (
		limit int
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Compare how many 8-puzzle states each search visits before the goal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runPuzzle(limit, trace)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 3, "level limit of the depth-limited search")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every visited board")

	return cmd
}

func puzzleMethods(limit int) []seekMethod {
	return []seekMethod{
		{"BFS right", []graph.ExploreOption{graph.WithAlgorithm(graph.BFS), graph.WithDirection(graph.Right)}},
		{"BFS left", []graph.ExploreOption{graph.WithAlgorithm(graph.BFS), graph.WithDirection(graph.Left)}},
		{"DFS left", []graph.ExploreOption{graph.WithAlgorithm(graph.DFS), graph.WithDirection(graph.Left)}},
		{fmt.Sprintf("DFS right, level limit %d", limit), []graph.ExploreOption{
			graph.WithAlgorithm(graph.DFS),
			graph.WithComputeLevels(),
			graph.WithLevelLimit(limit),
		}},
		{"DFS right", []graph.ExploreOption{graph.WithAlgorithm(graph.DFS)}},
		{"iterative DFS right", []graph.ExploreOption{graph.WithAlgorithm(graph.DFS), graph.WithIterative()}},
	}
}

func (a *app) runPuzzle(limit int, trace bool) error {
	tree, err := puzzle.NewTree(a.graphOptions(trace)...)
	if err != nil {
		return err
	}

	results := make([]seekResult, 0, 6)
	for _, m := range puzzleMethods(limit) {
		if trace {
			fmt.Fprintln(a.out, a.st.Title(m.name+":"))
		}
		opts := append([]graph.ExploreOption{graph.WithEquality(puzzle.SameBoard())}, m.opts...)
		visits, found, err := tree.Graph.Seek(tree.Root, tree.Target, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
		a.log.WithField("method", m.name).WithField("visits", visits).Debug("seek finished")
		results = append(results, seekResult{name: m.name, visits: visits, found: found})
	}

	fmt.Fprintln(a.out, a.st.Title(fmt.Sprintf("Searching %s from %s:", puzzle.GoalBoard, tree.Root.Value())))
	best := -1
	for _, r := range results {
		if !r.found {
			fmt.Fprintf(a.out, "  %s: %s\n", r.name, a.st.Miss(fmt.Sprintf("goal not found (%d visited)", r.visits)))
			continue
		}
		fmt.Fprintf(a.out, "  %s: %s\n", r.name, a.st.OK(fmt.Sprintf("%d visited", r.visits)))
		if best < 0 || r.visits < best {
			best = r.visits
		}
	}
	if best < 0 {
		fmt.Fprintln(a.out, a.st.Miss("No search reached the goal."))
		return nil
	}

	var winners []string
	for _, r := range results {
		if r.found && r.visits == best {
			winners = append(winners, r.name)
		}
	}
	fmt.Fprintf(a.out, "Fewest visits: %d by %s\n", best, a.st.OK(strings.Join(winners, ", ")))

	return nil
}
