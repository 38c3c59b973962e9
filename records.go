package startupmetrics

import (
	"time"

	"github.com/blackroad/startupmetrics/period"
	"github.com/blackroad/startupmetrics/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// The write path. Every operation screens its input, enforces that the
// referenced startup exists, then appends a record carrying a fresh
// identifier and a creation timestamp. Nothing is ever updated in place
// except the churn/departure stamps.

func defaulted(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// NewStartup registers a startup and returns the stored record.
func (s *Service) NewStartup(in StartupInput) (*store.Startup, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	row := &store.Startup{
		ID:          uuid.NewString(),
		Name:        in.Name,
		FoundedDate: in.FoundedDate,
		Stage:       defaulted(in.Stage, store.DefaultStage),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.InsertStartup(row); err != nil {
		return nil, err
	}
	log.Info().Str("startup_id", row.ID).Str("name", row.Name).Msg("startup registered")
	return row, nil
}

// AddCustomer appends a paying customer to the startup's records.
func (s *Service) AddCustomer(startupID string, in CustomerInput) (*store.Customer, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	row := &store.Customer{
		ID:        uuid.NewString(),
		StartupID: startupID,
		Name:      in.Name,
		Plan:      defaulted(in.Plan, store.DefaultPlan),
		MRR:       in.MRR,
		Status:    store.StatusActive,
		StartedAt: time.Now().UTC(),
		Notes:     in.Notes,
	}
	if err := s.store.InsertCustomer(row); err != nil {
		return nil, err
	}
	log.Info().Str("customer_id", row.ID).Str("startup_id", startupID).Msg("customer recorded")
	return row, nil
}

// ChurnCustomer marks the customer churned now and returns the updated
// record. The row is kept so past cohorts still count it.
func (s *Service) ChurnCustomer(customerID string) (*store.Customer, error) {
	if err := s.store.MarkChurned(customerID, time.Now().UTC()); err != nil {
		return nil, err
	}
	log.Info().Str("customer_id", customerID).Msg("customer churned")
	return s.store.Customer(customerID)
}

// AddEmployee appends a hire to the startup's records.
func (s *Service) AddEmployee(startupID string, in EmployeeInput) (*store.Employee, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	row := &store.Employee{
		ID:         uuid.NewString(),
		StartupID:  startupID,
		Name:       in.Name,
		Role:       in.Role,
		Department: defaulted(in.Department, store.DefaultDepartment),
		Salary:     in.Salary,
		HiredAt:    time.Now().UTC(),
	}
	if err := s.store.InsertEmployee(row); err != nil {
		return nil, err
	}
	log.Info().Str("employee_id", row.ID).Str("startup_id", startupID).Msg("employee recorded")
	return row, nil
}

// DepartEmployee records the departure of an employee now and returns the
// updated record. Departed employees stop counting toward headcount.
func (s *Service) DepartEmployee(employeeID string) (*store.Employee, error) {
	if err := s.store.MarkDeparted(employeeID, time.Now().UTC()); err != nil {
		return nil, err
	}
	log.Info().Str("employee_id", employeeID).Msg("employee departed")
	return s.store.Employee(employeeID)
}

// AddFunding appends a closed funding round to the capital ledger. Rounds
// are immutable once recorded.
func (s *Service) AddFunding(startupID string, in FundingInput) (*store.FundingRound, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	row := &store.FundingRound{
		ID:        uuid.NewString(),
		StartupID: startupID,
		RoundName: in.RoundName,
		Amount:    in.Amount,
		Valuation: in.Valuation,
		Investors: in.Investors,
		ClosedAt:  time.Now().UTC(),
		Notes:     in.Notes,
	}
	if err := s.store.InsertFundingRound(row); err != nil {
		return nil, err
	}
	log.Info().Str("round_id", row.ID).Str("startup_id", startupID).Str("round", row.RoundName).Msg("funding round recorded")
	return row, nil
}

// RecordMetric appends a raw KPI point for the startup.
func (s *Service) RecordMetric(startupID string, in MetricInput) (*store.Metric, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	month := in.Period
	if month.IsZero() {
		month = period.Current()
	}
	row := &store.Metric{
		ID:         uuid.NewString(),
		StartupID:  startupID,
		MetricType: in.MetricType,
		Value:      in.Value,
		Period:     month.String(),
		RecordedAt: time.Now().UTC(),
		Notes:      in.Notes,
	}
	if err := s.store.InsertMetric(row); err != nil {
		return nil, err
	}
	log.Info().Str("metric_id", row.ID).Str("startup_id", startupID).Str("type", row.MetricType).Msg("metric recorded")
	return row, nil
}
