package renderer

import (
	"bytes"

	"github.com/blackroad/startupmetrics"
	md "github.com/nao1215/markdown"
)

func RunwayMarkdown(r *startupmetrics.RunwayReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Runway")

	doc.Table(md.TableSet{
		Header: []string{md.Bold("Runway"), md.Bold(r.RunwayMonths.String())},
		Rows: [][]string{
			{"Total Raised", r.TotalRaised.String()},
			{"MRR", r.MRR.String()},
			{"Monthly Burn", r.MonthlyBurn.String()},
			{"Net Burn", r.NetBurn.String()},
		},
	})

	if r.RunwayMonths.IsInfinite() {
		doc.PlainText("Revenue covers the burn. The bank account is not the constraint.")
	}

	return doc.String()
}
