package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics"
	"github.com/google/subcommands"
)

type addCustomerCmd struct {
	plan  string
	notes string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "record a new paying customer" }
func (*addCustomerCmd) Usage() string {
	return `kpi add-customer [-plan <plan>] [-notes <text>] <startup-id> <name> <mrr>

  Records a customer with its monthly recurring revenue. The customer
  starts active and counts toward MRR immediately.
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "plan", "", "billing plan (defaults to monthly)")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <startup-id> <name> <mrr>")
		return subcommands.ExitUsageError
	}
	mrr, err := parseFloat("mrr", f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	cust, err := svc.AddCustomer(f.Arg(0), startupmetrics.CustomerInput{
		Name:  f.Arg(1),
		MRR:   mrr,
		Plan:  c.plan,
		Notes: c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added customer %q (%s) at %s per month\n", cust.Name, cust.ID, startupmetrics.NewAmount(cust.MRR))
	return subcommands.ExitSuccess
}
