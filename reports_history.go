package startupmetrics

import (
	"iter"

	"github.com/blackroad/startupmetrics/store"
)

// History returns every recorded point of one metric type for the startup,
// in non-decreasing period order. The sequence is a finite snapshot of the
// records at call time and can be ranged over any number of times; there is
// no live subscription.
func (s *Service) History(startupID, metricType string) (iter.Seq[store.Metric], error) {
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	rows, err := s.store.MetricsByType(startupID, metricType)
	if err != nil {
		return nil, err
	}
	return func(yield func(store.Metric) bool) {
		for _, m := range rows {
			if !yield(m) {
				return
			}
		}
	}, nil
}

// ListStartups returns every registered startup, most recently created
// first.
func (s *Service) ListStartups() ([]store.Startup, error) {
	return s.store.ListStartups()
}
