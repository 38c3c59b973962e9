package startupmetrics

import (
	"github.com/blackroad/startupmetrics/period"
	"github.com/shopspring/decimal"
)

// ChurnReport describes customer attrition over one calendar month.
type ChurnReport struct {
	Period           period.Month `json:"period"`
	CustomersAtStart int64        `json:"customers_at_start"`
	Churned          int64        `json:"churned"`
	ChurnRatePct     Percent      `json:"churn_rate_pct"`
}

// ChurnRate reports attrition for the given month, defaulting to the
// current one when the zero Month is passed.
//
// The denominator is the pre-period cohort: customers started strictly
// before the month, whatever their current status. The numerator counts
// churn stamps falling inside the month, so a customer acquired and lost
// within the month raises the numerator but not the denominator. An empty
// cohort reports a rate of 0.
func (s *Service) ChurnRate(startupID string, month period.Month) (*ChurnReport, error) {
	if month.IsZero() {
		month = period.Current()
	}
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	cohort, err := s.store.CountCustomersStartedBefore(startupID, month.Start())
	if err != nil {
		return nil, err
	}
	churned, err := s.store.CountChurnedIn(startupID, month.Start(), month.End())
	if err != nil {
		return nil, err
	}
	var rate Percent
	if cohort > 0 {
		rate = Percent(decimal.NewFromInt(churned * 100).
			Div(decimal.NewFromInt(cohort)).
			Round(2).
			InexactFloat64())
	}
	return &ChurnReport{
		Period:           month,
		CustomersAtStart: cohort,
		Churned:          churned,
		ChurnRatePct:     rate,
	}, nil
}
