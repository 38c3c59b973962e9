package renderer

import (
	"bytes"

	"github.com/blackroad/startupmetrics/store"
	md "github.com/nao1215/markdown"
)

func StartupsMarkdown(startups []store.Startup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Startups")

	if len(startups) == 0 {
		doc.PlainText("No startups registered yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Name", "Stage", "Founded"},
		Rows:   [][]string{},
	}
	for _, su := range startups {
		table.Rows = append(table.Rows, []string{su.ID, su.Name, su.Stage, su.FoundedDate})
	}
	doc.Table(table)

	return doc.String()
}
