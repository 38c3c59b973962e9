package startupmetrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fund(t *testing.T, s *Service, startupID string, amount float64) {
	t.Helper()
	_, err := s.AddFunding(startupID, FundingInput{RoundName: "seed", Amount: amount})
	require.NoError(t, err)
}

func TestRunwayBasic(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	fund(t, s, su, 500_000)

	report, err := s.Runway(su, 50_000)
	require.NoError(t, err)

	assert.True(t, report.TotalRaised.Equal(NewAmount(500_000)), "total raised = %s", report.TotalRaised)
	assert.True(t, report.MRR.IsZero(), "mrr = %s", report.MRR)
	assert.True(t, report.NetBurn.Equal(NewAmount(50_000)), "net burn = %s", report.NetBurn)

	months, ok := report.RunwayMonths.Finite()
	require.True(t, ok, "runway should be finite")
	assert.Equal(t, 10.0, months)
}

func TestRunwayRevenueOffsetsBurn(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	fund(t, s, su, 500_000)
	addCustomer(t, s, su, 10_000)

	report, err := s.Runway(su, 60_000)
	require.NoError(t, err)

	assert.True(t, report.MRR.Equal(NewAmount(10_000)), "mrr = %s", report.MRR)
	assert.True(t, report.NetBurn.Equal(NewAmount(50_000)), "net burn = %s", report.NetBurn)
	months, ok := report.RunwayMonths.Finite()
	require.True(t, ok)
	assert.Equal(t, 10.0, months)
}

// TestRunwayProfitable pins the sentinel: burn at or under revenue yields
// zero net burn and an unbounded runway, never a negative or huge number.
func TestRunwayProfitable(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	fund(t, s, su, 500_000)
	addCustomer(t, s, su, 60_000)

	report, err := s.Runway(su, 50_000)
	require.NoError(t, err)

	assert.True(t, report.NetBurn.IsZero(), "net burn = %s, want zero", report.NetBurn)
	assert.True(t, report.RunwayMonths.IsInfinite())
	_, ok := report.RunwayMonths.Finite()
	assert.False(t, ok)
	assert.Equal(t, "∞", report.RunwayMonths.String())
}

func TestRunwayZeroBurnIsInfinite(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	fund(t, s, su, 500_000)

	report, err := s.Runway(su, 0)
	require.NoError(t, err)
	assert.True(t, report.RunwayMonths.IsInfinite())
}

func TestRunwayOneDecimal(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	fund(t, s, su, 500_000)

	report, err := s.Runway(su, 30_000)
	require.NoError(t, err)

	months, ok := report.RunwayMonths.Finite()
	require.True(t, ok)
	// 500000/30000 = 16.666..., reported with one decimal.
	assert.Equal(t, 16.7, months)
}

func TestRunwayJSON(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	fund(t, s, su, 500_000)

	finite, err := s.Runway(su, 50_000)
	require.NoError(t, err)
	data, err := json.Marshal(finite)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"total_raised": 500000,
		"mrr": 0,
		"monthly_burn": 50000,
		"net_burn": 50000,
		"runway_months": 10
	}`, string(data))

	infinite, err := s.Runway(su, 0)
	require.NoError(t, err)
	data, err = json.Marshal(infinite)
	require.NoError(t, err)

	var decoded struct {
		RunwayMonths Months `json:"runway_months"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.RunwayMonths.IsInfinite())
}
