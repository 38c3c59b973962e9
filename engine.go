package startupmetrics

import (
	"github.com/blackroad/startupmetrics/store"
	"github.com/go-playground/validator/v10"
)

// Service is the derived-metrics engine. It is stateless: every figure is a
// fresh read-then-derive against the current records, so there is nothing to
// cache and nothing to invalidate.
type Service struct {
	store    *store.Store
	validate *validator.Validate
}

// NewService returns a Service computing over the given store.
func NewService(st *store.Store) *Service {
	return &Service{store: st, validate: newValidator()}
}

// requireStartup fails with a NotFoundError unless the startup is recorded.
// A metrics query for an unknown startup must fail loudly, never report a
// plausible zero.
func (s *Service) requireStartup(id string) error {
	ok, err := s.store.StartupExists(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "startup", ID: id}
	}
	return nil
}

// activeMRR is the single computation path for monthly recurring revenue:
// the mrr sum over active customers, rounded to cents.
func (s *Service) activeMRR(startupID string) (Amount, error) {
	sum, err := s.store.ActiveMRRSum(startupID)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(sum).Rounded(), nil
}

// MRR returns the monthly recurring revenue of the startup: the combined
// recurring revenue of its active customers. Churned customers keep their
// historical mrr on record but contribute nothing here.
func (s *Service) MRR(startupID string) (Amount, error) {
	if err := s.requireStartup(startupID); err != nil {
		return Amount{}, err
	}
	return s.activeMRR(startupID)
}

// ARR returns the annual recurring revenue, exactly twelve times the MRR
// figure for the same instant.
func (s *Service) ARR(startupID string) (Amount, error) {
	mrr, err := s.MRR(startupID)
	if err != nil {
		return Amount{}, err
	}
	return mrr.Times(12).Rounded(), nil
}
