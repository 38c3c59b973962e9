package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics"
	"github.com/google/subcommands"
)

type addEmployeeCmd struct {
	department string
	salary     float64
}

func (*addEmployeeCmd) Name() string     { return "add-employee" }
func (*addEmployeeCmd) Synopsis() string { return "record a hire" }
func (*addEmployeeCmd) Usage() string {
	return `kpi add-employee [-department <dept>] [-salary <amount>] <startup-id> <name> <role>

  Records an employee for the headcount report.
`
}

func (c *addEmployeeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.department, "department", "", "department (defaults to general)")
	f.Float64Var(&c.salary, "salary", 0, "salary cost counted in the headcount report")
}

func (c *addEmployeeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <startup-id> <name> <role>")
		return subcommands.ExitUsageError
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	emp, err := svc.AddEmployee(f.Arg(0), startupmetrics.EmployeeInput{
		Name:       f.Arg(1),
		Role:       f.Arg(2),
		Department: c.department,
		Salary:     c.salary,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added employee %q (%s) as %s in %s\n", emp.Name, emp.ID, emp.Role, emp.Department)
	return subcommands.ExitSuccess
}
