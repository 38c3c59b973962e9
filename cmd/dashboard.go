package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	burn    float64
	jsonOut bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display every KPI in one snapshot" }
func (*dashboardCmd) Usage() string {
	return `kpi dashboard [-burn <monthly-burn>] [-json] <startup-id>

  Composes MRR, ARR, churn for the current month and headcount into a
  single snapshot. Pass -burn to include the runway section.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.burn, "burn", 0, "gross monthly burn; omit to skip the runway section")
	f.BoolVar(&c.jsonOut, "json", false, "print the canonical JSON report")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the startup id")
		return subcommands.ExitUsageError
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	snap, err := svc.KPIDashboard(f.Arg(0), c.burn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		return printJSON(snap)
	}
	printMarkdown(renderer.DashboardMarkdown(snap))
	return subcommands.ExitSuccess
}
