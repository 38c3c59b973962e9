package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics"
	"github.com/google/subcommands"
)

type createCmd struct {
	stage   string
	founded string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "register a new startup" }
func (*createCmd) Usage() string {
	return `kpi create [-stage <stage>] [-founded <date>] <name>

  Registers a startup and prints its generated id. Every other command
  takes that id as its first argument.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stage, "stage", "", "funding stage (defaults to seed)")
	f.StringVar(&c.founded, "founded", "", "founding date, e.g. 2024-01-15")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the startup name")
		return subcommands.ExitUsageError
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	su, err := svc.NewStartup(startupmetrics.StartupInput{
		Name:        f.Arg(0),
		Stage:       c.stage,
		FoundedDate: c.founded,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created startup %q with id %s\n", su.Name, su.ID)
	return subcommands.ExitSuccess
}
