package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	jsonOut bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all registered startups" }
func (*listCmd) Usage() string {
	return `kpi list [-json]

  Lists every registered startup, newest first.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOut, "json", false, "print the startups as JSON")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	startups, err := svc.ListStartups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		return printJSON(startups)
	}
	printMarkdown(renderer.StartupsMarkdown(startups))
	return subcommands.ExitSuccess
}
