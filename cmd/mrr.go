package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics"
	"github.com/google/subcommands"
)

type mrrCmd struct {
	jsonOut bool
}

func (*mrrCmd) Name() string     { return "mrr" }
func (*mrrCmd) Synopsis() string { return "display monthly and annual recurring revenue" }
func (*mrrCmd) Usage() string {
	return `kpi mrr [-json] <startup-id>

  Displays the MRR (sum over active customers) and the ARR derived
  from it.
`
}

func (c *mrrCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOut, "json", false, "print the canonical JSON report")
}

func (c *mrrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	mrr, err := svc.MRR(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	arr, err := svc.ARR(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		return printJSON(struct {
			MRR startupmetrics.Amount `json:"mrr"`
			ARR startupmetrics.Amount `json:"arr"`
		}{mrr, arr})
	}

	fmt.Printf("MRR: %s\n", mrr)
	fmt.Printf("ARR: %s\n", arr)
	return subcommands.ExitSuccess
}
