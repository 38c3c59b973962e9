package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type churnCustomerCmd struct{}

func (*churnCustomerCmd) Name() string     { return "churn-customer" }
func (*churnCustomerCmd) Synopsis() string { return "mark a customer as churned" }
func (*churnCustomerCmd) Usage() string {
	return `kpi churn-customer <customer-id>

  Flips the customer to churned. The record is kept so past cohorts and
  churn rates stay computable.
`
}

func (*churnCustomerCmd) SetFlags(f *flag.FlagSet) {}

func (c *churnCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the customer id")
		return subcommands.ExitUsageError
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	cust, err := svc.ChurnCustomer(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Customer %q churned on %s\n", cust.Name, cust.ChurnedAt.Format("2006-01-02"))
	return subcommands.ExitSuccess
}
