package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/graph"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	json    bool
	noColor bool

	out io.Writer
	log *log.Logger
	st  styles
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{log: log.New(), out: out}

	rootCmd := &cobra.Command{
		Use:          "lvwalk",
		Short:        "Walk graphs breadth-first, depth-first, by levels, by path labels or by heuristic.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.setup(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log traversal steps at debug level")
	rootCmd.PersistentFlags().BoolVar(&a.json, "json", false, "log as JSON")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTreeCmd(a),
		newPuzzleCmd(a),
		newRouteCmd(a),
		newClimbCmd(a),
	)

	return rootCmd
}

// setup applies the persistent flags to the logger and output styles.
func (a *app) setup(out, errOut io.Writer) {
	a.out = out
	a.log.SetOutput(errOut)
	a.log.SetLevel(log.InfoLevel)
	if a.verbose {
		a.log.SetLevel(log.DebugLevel)
	}
	if a.json {
		a.log.SetFormatter(&log.JSONFormatter{})
	} else {
		a.log.SetFormatter(&log.TextFormatter{DisableColors: a.noColor || !isTerminal(errOut)})
	}
	a.st = newStyles(!a.noColor && isTerminal(out))
}

// graphOptions routes graph diagnostics to the app logger. Vertices printed
// by default actions go to the command output when trace is set and are
// dropped otherwise.
func (a *app) graphOptions(trace bool) []graph.Option {
	out := io.Discard
	if trace {
		out = a.out
	}

	return []graph.Option{
		graph.WithLogger(log.NewEntry(a.log)),
		graph.WithOutput(out),
	}
}
