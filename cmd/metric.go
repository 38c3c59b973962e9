package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blackroad/startupmetrics"
	"github.com/blackroad/startupmetrics/period"
	"github.com/google/subcommands"
)

type metricCmd struct {
	period string
	notes  string
}

func (*metricCmd) Name() string     { return "metric" }
func (*metricCmd) Synopsis() string { return "record a raw KPI data point" }
func (*metricCmd) Usage() string {
	return `kpi metric [-p <month>] [-notes <text>] <startup-id> <metric-type> <value>

  Records one data point of any custom metric (nps, burn, signups, ...)
  against a month. Defaults to the current month.
`
}

func (c *metricCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "month the point belongs to, e.g. 2026-08 (defaults to the current month)")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
}

func (c *metricCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <startup-id> <metric-type> <value>")
		return subcommands.ExitUsageError
	}
	value, err := parseFloat("value", f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var month period.Month
	if c.period != "" {
		month, err = period.Parse(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	svc, closeStore, err := openService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	m, err := svc.RecordMetric(f.Arg(0), startupmetrics.MetricInput{
		MetricType: f.Arg(1),
		Value:      value,
		Period:     month,
		Notes:      c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s = %v for %s\n", m.MetricType, m.Value, m.Period)
	return subcommands.ExitSuccess
}
