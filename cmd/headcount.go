package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics/renderer"
	"github.com/google/subcommands"
)

type headcountCmd struct {
	jsonOut bool
}

func (*headcountCmd) Name() string     { return "headcount" }
func (*headcountCmd) Synopsis() string { return "display current headcount by department" }
func (*headcountCmd) Usage() string {
	return `kpi headcount [-json] <startup-id>

  Displays the active employees and their salary cost, broken down by
  department. Departed employees are not counted.
`
}

func (c *headcountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOut, "json", false, "print the canonical JSON report")
}

func (c *headcountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := svc.Headcount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		return printJSON(report)
	}
	printMarkdown(renderer.HeadcountMarkdown(report))
	return subcommands.ExitSuccess
}
