package startupmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hire(t *testing.T, s *Service, startupID, dept string, salary float64) string {
	t.Helper()
	e, err := s.AddEmployee(startupID, EmployeeInput{
		Name:       "employee",
		Role:       "engineer",
		Department: dept,
		Salary:     salary,
	})
	require.NoError(t, err)
	return e.ID
}

func TestHeadcountEmpty(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)

	report, err := s.Headcount(su)
	require.NoError(t, err)
	assert.Zero(t, report.TotalHeadcount)
	assert.True(t, report.TotalSalaryCost.IsZero())
	assert.Empty(t, report.ByDepartment)
}

func TestHeadcountTwoDepartments(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)

	hire(t, s, su, "engineering", 120_000)
	hire(t, s, su, "sales", 100_000)

	report, err := s.Headcount(su)
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalHeadcount)
	assert.True(t, report.TotalSalaryCost.Equal(NewAmount(220_000)), "salary cost = %s", report.TotalSalaryCost)
	require.Len(t, report.ByDepartment, 2)
	assert.Equal(t, int64(1), report.ByDepartment["engineering"].Count)
	assert.True(t, report.ByDepartment["engineering"].Salary.Equal(NewAmount(120_000)))
	assert.Equal(t, int64(1), report.ByDepartment["sales"].Count)
	assert.True(t, report.ByDepartment["sales"].Salary.Equal(NewAmount(100_000)))
}

// TestHeadcountSparse pins that a department whose only employee departed
// vanishes from the map instead of appearing zero-filled.
func TestHeadcountSparse(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)

	hire(t, s, su, "engineering", 120_000)
	gone := hire(t, s, su, "ops", 80_000)

	_, err := s.DepartEmployee(gone)
	require.NoError(t, err)

	report, err := s.Headcount(su)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalHeadcount)
	assert.True(t, report.TotalSalaryCost.Equal(NewAmount(120_000)))
	require.Len(t, report.ByDepartment, 1)
	_, present := report.ByDepartment["ops"]
	assert.False(t, present, "departed-only department should be omitted")
}

func TestDepartEmployee(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	id := hire(t, s, su, "engineering", 120_000)

	e, err := s.DepartEmployee(id)
	require.NoError(t, err)
	require.NotNil(t, e.LeftAt)

	_, err = s.DepartEmployee("no-such-employee")
	assert.ErrorIs(t, err, ErrNotFound)
}
