package renderer

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/blackroad/startupmetrics"
	"github.com/blackroad/startupmetrics/period"
	"github.com/blackroad/startupmetrics/store"
)

// mustMonths builds a runway duration through the public JSON surface, the
// only way to obtain one outside the engine.
func mustMonths(t *testing.T, raw string) startupmetrics.Months {
	t.Helper()
	var m startupmetrics.Months
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func wantContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			t.Errorf("output is missing %q:\n%s", f, out)
		}
	}
}

func TestChurnMarkdown(t *testing.T) {
	out := ChurnMarkdown(&startupmetrics.ChurnReport{
		Period:           period.MustParse("2026-08"),
		CustomersAtStart: 12,
		Churned:          2,
		ChurnRatePct:     16.67,
	})
	wantContains(t, out, "# Churn for 2026-08", "16.67%", "Customers at Start", "12")
}

func TestRunwayMarkdown(t *testing.T) {
	out := RunwayMarkdown(&startupmetrics.RunwayReport{
		TotalRaised:  startupmetrics.NewAmount(500000),
		MRR:          startupmetrics.NewAmount(0),
		MonthlyBurn:  startupmetrics.NewAmount(50000),
		NetBurn:      startupmetrics.NewAmount(50000),
		RunwayMonths: mustMonths(t, "10"),
	})
	wantContains(t, out, "# Runway", "$500,000.00", "10.0 months", "Net Burn")
	if strings.Contains(out, "not the constraint") {
		t.Error("profitability note rendered for a finite runway")
	}

	out = RunwayMarkdown(&startupmetrics.RunwayReport{
		TotalRaised:  startupmetrics.NewAmount(500000),
		MRR:          startupmetrics.NewAmount(80000),
		MonthlyBurn:  startupmetrics.NewAmount(50000),
		NetBurn:      startupmetrics.NewAmount(0),
		RunwayMonths: mustMonths(t, `"∞"`),
	})
	wantContains(t, out, "∞", "not the constraint")
}

func TestHeadcountMarkdownSortsDepartments(t *testing.T) {
	out := HeadcountMarkdown(&startupmetrics.HeadcountReport{
		TotalHeadcount:  3,
		TotalSalaryCost: startupmetrics.NewAmount(340000),
		ByDepartment: map[string]startupmetrics.DepartmentHeadcount{
			"sales":       {Count: 1, Salary: startupmetrics.NewAmount(90000)},
			"engineering": {Count: 2, Salary: startupmetrics.NewAmount(250000)},
		},
	})
	wantContains(t, out, "3 employees", "$340,000.00", "engineering", "sales")
	if strings.Index(out, "engineering") > strings.Index(out, "sales") {
		t.Errorf("departments are not sorted:\n%s", out)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	points := []store.Metric{
		{Period: "2026-07", Value: 42, RecordedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{Period: "2026-08", Value: -12.5, RecordedAt: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), Notes: "refund month"},
	}
	out := HistoryMarkdown("nps", slices.Values(points))
	wantContains(t, out, "# History for nps", "2026-07", "42", "-12.5", "refund month")

	out = HistoryMarkdown("nps", slices.Values([]store.Metric{}))
	wantContains(t, out, "No data points recorded.")
}

func TestStartupsMarkdown(t *testing.T) {
	out := StartupsMarkdown([]store.Startup{
		{ID: "s-1", Name: "BlackRoad", Stage: "seed", FoundedDate: "2024-01-15"},
	})
	wantContains(t, out, "# Startups", "BlackRoad", "seed", "2024-01-15")

	if out := StartupsMarkdown(nil); !strings.Contains(out, "No startups registered yet.") {
		t.Errorf("empty listing missing placeholder:\n%s", out)
	}
}

func TestDashboardMarkdown(t *testing.T) {
	d := &startupmetrics.Dashboard{
		Startup: "BlackRoad",
		MRR:     startupmetrics.NewAmount(4000),
		ARR:     startupmetrics.NewAmount(48000),
		Churn: &startupmetrics.ChurnReport{
			Period: period.MustParse("2026-08"),
		},
		Headcount: &startupmetrics.HeadcountReport{
			TotalHeadcount:  2,
			TotalSalaryCost: startupmetrics.NewAmount(250000),
			ByDepartment: map[string]startupmetrics.DepartmentHeadcount{
				"engineering": {Count: 2, Salary: startupmetrics.NewAmount(250000)},
			},
		},
		AsOf: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC),
	}

	out := DashboardMarkdown(d)
	wantContains(t, out,
		"# KPI Dashboard for BlackRoad",
		"As of 2026-08-25 10:30 UTC",
		"$4,000.00",
		"$48,000.00",
		"Churn (2026-08)",
		"## Headcount by Department",
	)
	if strings.Contains(out, "Runway") {
		t.Errorf("runway row rendered without a burn figure:\n%s", out)
	}

	d.Runway = &startupmetrics.RunwayReport{
		TotalRaised:  startupmetrics.NewAmount(500000),
		MonthlyBurn:  startupmetrics.NewAmount(54000),
		NetBurn:      startupmetrics.NewAmount(50000),
		RunwayMonths: mustMonths(t, "10"),
	}
	wantContains(t, DashboardMarkdown(d), "Runway", "10.0 months")
}
