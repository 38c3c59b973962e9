package startupmetrics

import "github.com/shopspring/decimal"

// RunwayReport describes how long the raised capital sustains the current
// net burn.
type RunwayReport struct {
	TotalRaised  Amount `json:"total_raised"`
	MRR          Amount `json:"mrr"`
	MonthlyBurn  Amount `json:"monthly_burn"`
	NetBurn      Amount `json:"net_burn"`
	RunwayMonths Months `json:"runway_months"`
}

// Runway reports the months of operation left at the given gross monthly
// burn, funded by lifetime raised capital. Recurring revenue offsets burn
// but never below zero: a profitable company reports zero net burn and an
// unbounded runway, not a negative one.
func (s *Service) Runway(startupID string, monthlyBurn float64) (*RunwayReport, error) {
	if err := s.checkValue("monthly_burn", monthlyBurn, "finite,gte=0"); err != nil {
		return nil, err
	}
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	raised, err := s.store.TotalRaised(startupID)
	if err != nil {
		return nil, err
	}
	mrr, err := s.activeMRR(startupID)
	if err != nil {
		return nil, err
	}

	burn := NewAmount(monthlyBurn)
	netBurn := burn.Sub(mrr)
	if netBurn.IsNegative() {
		netBurn = Amount{}
	}

	// The division runs on the exact figures; only the reported fields are
	// rounded.
	months := infiniteMonths()
	if netBurn.IsPositive() {
		months = newMonths(decimal.NewFromFloat(raised).Div(netBurn.value).Round(1))
	}

	return &RunwayReport{
		TotalRaised:  NewAmount(raised).Rounded(),
		MRR:          mrr,
		MonthlyBurn:  burn,
		NetBurn:      netBurn.Rounded(),
		RunwayMonths: months,
	}, nil
}
