package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics/period"
	"github.com/blackroad/startupmetrics/renderer"
	"github.com/google/subcommands"
)

type churnCmd struct {
	period  string
	jsonOut bool
}

func (*churnCmd) Name() string     { return "churn" }
func (*churnCmd) Synopsis() string { return "display the churn rate for a month" }
func (*churnCmd) Usage() string {
	return `kpi churn [-p <month>] [-json] <startup-id>

  Displays how many customers churned during the month against the
  cohort that existed when it started.
`
}

func (c *churnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "month to report on, e.g. 2026-08 (defaults to the current month)")
	f.BoolVar(&c.jsonOut, "json", false, "print the canonical JSON report")
}

func (c *churnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the startup id")
		return subcommands.ExitUsageError
	}
	var month period.Month
	if c.period != "" {
		var err error
		month, err = period.Parse(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	report, err := svc.ChurnRate(f.Arg(0), month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		return printJSON(report)
	}
	printMarkdown(renderer.ChurnMarkdown(report))
	return subcommands.ExitSuccess
}
