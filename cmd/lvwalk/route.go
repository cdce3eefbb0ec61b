package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/graph"
)

const (
	routeLabel = "Roads"
	ringLabel  = "Ring road"
)

var errUnknownVertex = errors.New("unknown vertex")

// demoRoads is A-B 1, A-C 10, B-C 5, stored both ways.
var demoRoads = builder.Edges(
	builder.Edge{From: "A", To: "B", Weight: 1},
	builder.Edge{From: "A", To: "C", Weight: 10},
	builder.Edge{From: "B", To: "C", Weight: 5},
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		to   string
		ring int
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Label every road junction with its next hop and cost towards a destination",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runRoute(to, ring)
		},
	}
	cmd.Flags().StringVar(&to, "to", "C", "destination vertex")
	cmd.Flags().IntVar(&ring, "ring", 0, "route around a ring of this many junctions lettered A, B, ... (0 = the triangle demo)")

	return cmd
}

func (a *app) runRoute(to string, ring int) error {
	label, roads := routeLabel, demoRoads
	if ring > 0 {
		label, roads = ringLabel, builder.Cycle(ring)
	}
	g, err := builder.BuildWeightedGraph(label, []builder.BuilderOption{
		builder.WithLetterIDs(),
		builder.WithGraphOptions(a.graphOptions(true)...),
	}, roads)
	if err != nil {
		return err
	}
	dest, ok := builder.Lookup(g, to)
	if !ok {
		return fmt.Errorf("%w %q in %s", errUnknownVertex, to, g.Label())
	}
	if err = g.ShowAdjacencies(); err != nil {
		return err
	}
	if err = g.ShortestPath(dest); err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.st.Title("Labels towards "+dest.String()+":"))
	for _, v := range g.Vertices() {
		path, cost, err := g.PathFrom(v)
		if errors.Is(err, graph.ErrNoLabel) {
			fmt.Fprintf(a.out, "  %s %s\n", v, a.st.Miss("unreachable"))
			continue
		}
		if err != nil {
			return err
		}
		hops := make([]string, len(path))
		for i, p := range path {
			hops[i] = p.Value()
		}
		fmt.Fprintf(a.out, "  %s %s %s\n", v, a.st.OK(fmt.Sprintf("cost %g", cost)), a.st.Muted(strings.Join(hops, " -> ")))
	}

	return nil
}
