package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/graph"
)

const treeLabel = "Weighted tree"

// demoTree is 1 -> {2, 3}, 3 -> {4, 5}, every edge of weight 1.
var demoTree = builder.Edges(
	builder.Edge{From: "1", To: "2", Weight: 1},
	builder.Edge{From: "1", To: "3", Weight: 1},
	builder.Edge{From: "3", To: "4", Weight: 1},
	builder.Edge{From: "3", To: "5", Weight: 1},
)

func newTreeCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the weighted demo tree and walk it breadth- and depth-first down to a level",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTree(limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 2, "deepest level visited by both walks")

	return cmd
}

func (a *app) runTree(limit int) error {
	g, err := builder.BuildWeightedGraph(treeLabel, []builder.BuilderOption{
		builder.WithDirected(),
		builder.WithGraphOptions(a.graphOptions(true)...),
	}, demoTree)
	if err != nil {
		return err
	}
	if err = g.ShowAdjacencies(); err != nil {
		return err
	}
	root, _ := builder.Lookup(g, "1")

	fmt.Fprintln(a.out, a.st.Title(fmt.Sprintf("BFS RIGHT, levels computed, limit %d:", limit)))
	if _, err = g.Explore(root, graph.WithComputeLevels(), graph.WithLevelLimit(limit)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.st.Title(fmt.Sprintf("DFS RIGHT, limit %d:", limit)))
	_, err = g.Explore(root, graph.WithAlgorithm(graph.DFS), graph.WithLevelLimit(limit))

	return err
}
