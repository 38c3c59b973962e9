package startupmetrics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/blackroad/startupmetrics/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestService opens a service over a throwaway database.
func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(store.Config{Path: filepath.Join(t.TempDir(), "metrics.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st)
}

// newTestStartup registers a startup and returns its id.
func newTestStartup(t *testing.T, s *Service) string {
	t.Helper()
	su, err := s.NewStartup(StartupInput{Name: "BlackRoad"})
	require.NoError(t, err)
	return su.ID
}

// addCustomer records an active customer through the public write path.
func addCustomer(t *testing.T, s *Service, startupID string, mrr float64) *store.Customer {
	t.Helper()
	c, err := s.AddCustomer(startupID, CustomerInput{Name: "customer", MRR: mrr})
	require.NoError(t, err)
	return c
}

// backdateCustomer inserts a customer that started at an arbitrary instant,
// something the public write path never does.
func backdateCustomer(t *testing.T, s *Service, startupID string, mrr float64, startedAt time.Time) *store.Customer {
	t.Helper()
	row := &store.Customer{
		ID:        uuid.NewString(),
		StartupID: startupID,
		Name:      "customer",
		Plan:      store.DefaultPlan,
		MRR:       mrr,
		Status:    store.StatusActive,
		StartedAt: startedAt,
	}
	require.NoError(t, s.store.InsertCustomer(row))
	return row
}

// churnAt stamps a churn at an arbitrary instant.
func churnAt(t *testing.T, s *Service, customerID string, when time.Time) {
	t.Helper()
	require.NoError(t, s.store.MarkChurned(customerID, when))
}
