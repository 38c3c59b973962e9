package renderer

import (
	"bytes"
	"fmt"

	"github.com/blackroad/startupmetrics"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders a composed KPI snapshot. Sections for metrics
// that were not part of the snapshot (a runway without a burn figure) are
// simply absent.
func DashboardMarkdown(d *startupmetrics.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("KPI Dashboard for %s", d.Startup))
	doc.PlainText(fmt.Sprintf("As of %s", d.AsOf.Format("2006-01-02 15:04 MST")))

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"MRR", d.MRR.String()},
			{"ARR", d.ARR.String()},
		},
	}
	if d.Churn != nil {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("Churn (%s)", d.Churn.Period),
			d.Churn.ChurnRatePct.String(),
		})
	}
	if d.Headcount != nil {
		table.Rows = append(table.Rows,
			[]string{"Headcount", fmt.Sprintf("%d", d.Headcount.TotalHeadcount)},
			[]string{"Salary Cost", d.Headcount.TotalSalaryCost.String()},
		)
	}
	if d.Runway != nil {
		table.Rows = append(table.Rows, []string{"Runway", d.Runway.RunwayMonths.String()})
	}
	doc.Table(table)

	if d.Headcount != nil && len(d.Headcount.ByDepartment) > 0 {
		doc.H2("Headcount by Department")
		doc.Table(departmentTable(d.Headcount))
	}

	return doc.String()
}
