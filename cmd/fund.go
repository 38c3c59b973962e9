package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blackroad/startupmetrics"
	"github.com/google/subcommands"
)

type fundCmd struct {
	valuation string
	investors string
	notes     string
}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "record a closed funding round" }
func (*fundCmd) Usage() string {
	return `kpi fund [-valuation <amount>] [-investors <a,b,c>] [-notes <text>] <startup-id> <round-name> <amount>

  Records a financing round. The sum of all rounds is the capital the
  runway report divides by the net burn.
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.valuation, "valuation", "", "post-money valuation")
	f.StringVar(&c.investors, "investors", "", "comma separated investor names")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
}

func (c *fundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <startup-id> <round-name> <amount>")
		return subcommands.ExitUsageError
	}
	amount, err := parseFloat("amount", f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var valuation *float64
	if c.valuation != "" {
		v, err := parseFloat("valuation", c.valuation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		valuation = &v
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	round, err := svc.AddFunding(f.Arg(0), startupmetrics.FundingInput{
		RoundName: f.Arg(1),
		Amount:    amount,
		Valuation: valuation,
		Investors: splitInvestors(c.investors),
		Notes:     c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s round of %s\n", round.RoundName, startupmetrics.NewAmount(round.Amount))
	return subcommands.ExitSuccess
}

// splitInvestors turns the comma separated flag value into a clean list.
func splitInvestors(s string) []string {
	var investors []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			investors = append(investors, name)
		}
	}
	return investors
}
