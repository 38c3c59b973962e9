package renderer

import (
	"bytes"
	"fmt"
	"iter"
	"strconv"

	"github.com/blackroad/startupmetrics/store"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(metricType string, metrics iter.Seq[store.Metric]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", metricType))

	table := md.TableSet{
		Header: []string{"Period", "Value", "Recorded", "Notes"},
		Rows:   [][]string{},
	}
	for m := range metrics {
		table.Rows = append(table.Rows, []string{
			m.Period,
			strconv.FormatFloat(m.Value, 'f', -1, 64),
			m.RecordedAt.Format("2006-01-02"),
			m.Notes,
		})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No data points recorded.")
		return doc.String()
	}
	doc.Table(table)

	return doc.String()
}
