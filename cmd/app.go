// Package cmd implements the CLI application to track startup KPIs.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/blackroad/startupmetrics"
	"github.com/blackroad/startupmetrics/store"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "records")
	c.Register(&addCustomerCmd{}, "records")
	c.Register(&churnCustomerCmd{}, "records")
	c.Register(&addEmployeeCmd{}, "records")
	c.Register(&departEmployeeCmd{}, "records")
	c.Register(&fundCmd{}, "records")
	c.Register(&metricCmd{}, "records")

	c.Register(&listCmd{}, "reports")
	c.Register(&mrrCmd{}, "reports")
	c.Register(&churnCmd{}, "reports")
	c.Register(&runwayCmd{}, "reports")
	c.Register(&headcountCmd{}, "reports")
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "", "Path to the metrics database file (defaults to $STARTUP_DB, then ~/.blackroad/startup_metrics.db)")

// openService opens the metrics database and wraps it in the KPI engine.
// The returned closer releases the database handle.
func openService() (*startupmetrics.Service, func(), error) {
	st, err := store.Open(store.Config{Path: *dbFile})
	if err != nil {
		return nil, nil, err
	}
	return startupmetrics.NewService(st), func() { st.Close() }, nil
}

// parseFloat parses a positional numeric argument, naming it in the error.
func parseFloat(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a number", name, arg)
	}
	return v, nil
}

// printJSON writes the canonical JSON form of a report to stdout.
func printJSON(v any) subcommands.ExitStatus {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when no terminal renderer can be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
