package renderer

import (
	"bytes"
	"fmt"

	"github.com/blackroad/startupmetrics"
	md "github.com/nao1215/markdown"
)

func ChurnMarkdown(r *startupmetrics.ChurnReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Churn for %s", r.Period))

	doc.Table(md.TableSet{
		Header: []string{md.Bold("Churn Rate"), md.Bold(r.ChurnRatePct.String())},
		Rows: [][]string{
			{"Customers at Start", fmt.Sprintf("%d", r.CustomersAtStart)},
			{"Churned", fmt.Sprintf("%d", r.Churned)},
		},
	})

	return doc.String()
}
