package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/blackroad/startupmetrics"
	md "github.com/nao1215/markdown"
)

func HeadcountMarkdown(r *startupmetrics.HeadcountReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Headcount")
	doc.PlainText(fmt.Sprintf("%d employees, %s in salary cost", r.TotalHeadcount, r.TotalSalaryCost))

	if len(r.ByDepartment) > 0 {
		doc.Table(departmentTable(r))
	}

	return doc.String()
}

// departmentTable builds the per-department breakdown, sorted by department
// name so the output is stable across runs.
func departmentTable(r *startupmetrics.HeadcountReport) md.TableSet {
	table := md.TableSet{
		Header: []string{"Department", "Employees", "Salary Cost"},
		Rows:   [][]string{},
	}
	departments := slices.Collect(maps.Keys(r.ByDepartment))
	slices.Sort(departments)
	for _, dept := range departments {
		entry := r.ByDepartment[dept]
		table.Rows = append(table.Rows, []string{
			dept,
			fmt.Sprintf("%d", entry.Count),
			entry.Salary.String(),
		})
	}
	return table
}
