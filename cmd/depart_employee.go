package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type departEmployeeCmd struct{}

func (*departEmployeeCmd) Name() string     { return "depart-employee" }
func (*departEmployeeCmd) Synopsis() string { return "record an employee departure" }
func (*departEmployeeCmd) Usage() string {
	return `kpi depart-employee <employee-id>

  Marks the employee as departed. The record is kept; only the active
  headcount shrinks.
`
}

func (*departEmployeeCmd) SetFlags(f *flag.FlagSet) {}

func (c *departEmployeeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the employee id")
		return subcommands.ExitUsageError
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	emp, err := svc.DepartEmployee(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Employee %q departed on %s\n", emp.Name, emp.LeftAt.Format("2006-01-02"))
	return subcommands.ExitSuccess
}
