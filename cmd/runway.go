package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics/renderer"
	"github.com/google/subcommands"
)

type runwayCmd struct {
	burn    float64
	jsonOut bool
}

func (*runwayCmd) Name() string     { return "runway" }
func (*runwayCmd) Synopsis() string { return "display how many months of capital remain" }
func (*runwayCmd) Usage() string {
	return `kpi runway [-burn <monthly-burn>] [-json] <startup-id>

  Divides the total raised capital by the net burn (monthly burn minus
  MRR). A burn fully covered by revenue yields an infinite runway.
`
}

func (c *runwayCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.burn, "burn", 0, "gross monthly burn before revenue")
	f.BoolVar(&c.jsonOut, "json", false, "print the canonical JSON report")
}

func (c *runwayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := svc.Runway(f.Arg(0), c.burn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		return printJSON(report)
	}
	printMarkdown(renderer.RunwayMarkdown(report))
	return subcommands.ExitSuccess
}
