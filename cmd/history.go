package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/blackroad/startupmetrics/renderer"
	"github.com/blackroad/startupmetrics/store"
	"github.com/google/subcommands"
)

type historyCmd struct {
	jsonOut bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display recorded values of one metric over time" }
func (*historyCmd) Usage() string {
	return `kpi history [-json] <startup-id> <metric-type>

  Lists every recorded data point of the metric, ordered by month.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOut, "json", false, "print the data points as JSON")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <startup-id> <metric-type>")
		return subcommands.ExitUsageError
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	points, err := svc.History(f.Arg(0), f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		collected := slices.Collect(points)
		if collected == nil {
			// an empty history is [], never null
			collected = []store.Metric{}
		}
		return printJSON(collected)
	}
	printMarkdown(renderer.HistoryMarkdown(f.Arg(1), points))
	return subcommands.ExitSuccess
}
