package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Startup returns the startup with the given id.
func (s *Store) Startup(id string) (*Startup, error) {
	var row Startup
	err := s.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "startup", ID: id}
	}
	if err != nil {
		return nil, fail("load startup", err)
	}
	return &row, nil
}

// StartupExists reports whether a startup with the given id is recorded.
func (s *Store) StartupExists(id string) (bool, error) {
	var n int64
	if err := s.db.Model(&Startup{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fail("count startups", err)
	}
	return n > 0, nil
}

// Customer returns the customer with the given id.
func (s *Store) Customer(id string) (*Customer, error) {
	var row Customer
	err := s.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "customer", ID: id}
	}
	if err != nil {
		return nil, fail("load customer", err)
	}
	return &row, nil
}

// Employee returns the employee with the given id.
func (s *Store) Employee(id string) (*Employee, error) {
	var row Employee
	err := s.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "employee", ID: id}
	}
	if err != nil {
		return nil, fail("load employee", err)
	}
	return &row, nil
}

// ListStartups returns every startup, most recently created first.
func (s *Store) ListStartups() ([]Startup, error) {
	var rows []Startup
	if err := s.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fail("list startups", err)
	}
	return rows, nil
}

// ActiveMRRSum returns the combined monthly recurring revenue of every
// active customer of the startup.
func (s *Store) ActiveMRRSum(startupID string) (float64, error) {
	var total float64
	err := s.db.Model(&Customer{}).
		Where("startup_id = ? AND status = ?", startupID, StatusActive).
		Select("COALESCE(SUM(mrr), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fail("sum active mrr", err)
	}
	return total, nil
}

// CountCustomersStartedBefore returns how many customers of the startup
// started strictly before the given instant, whatever their current status.
func (s *Store) CountCustomersStartedBefore(startupID string, cutoff time.Time) (int64, error) {
	var n int64
	err := s.db.Model(&Customer{}).
		Where("startup_id = ? AND started_at < ?", startupID, cutoff).
		Count(&n).Error
	if err != nil {
		return 0, fail("count customer cohort", err)
	}
	return n, nil
}

// CountChurnedIn returns how many customers of the startup churned within
// the half-open interval [from, to).
func (s *Store) CountChurnedIn(startupID string, from, to time.Time) (int64, error) {
	var n int64
	err := s.db.Model(&Customer{}).
		Where("startup_id = ? AND status = ? AND churned_at >= ? AND churned_at < ?",
			startupID, StatusChurned, from, to).
		Count(&n).Error
	if err != nil {
		return 0, fail("count churned customers", err)
	}
	return n, nil
}

// TotalRaised returns the combined amount of every funding round closed by
// the startup.
func (s *Store) TotalRaised(startupID string) (float64, error) {
	var total float64
	err := s.db.Model(&FundingRound{}).
		Where("startup_id = ?", startupID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fail("sum funding rounds", err)
	}
	return total, nil
}

// DepartmentCount aggregates the active employees of one department.
type DepartmentCount struct {
	Department string
	Count      int64
	Salary     float64
}

// HeadcountByDepartment returns, per department with at least one active
// employee, the employee count and the combined salary cost.
func (s *Store) HeadcountByDepartment(startupID string) ([]DepartmentCount, error) {
	var rows []DepartmentCount
	err := s.db.Model(&Employee{}).
		Select("department, COUNT(*) AS count, COALESCE(SUM(salary), 0) AS salary").
		Where("startup_id = ? AND left_at IS NULL", startupID).
		Group("department").
		Scan(&rows).Error
	if err != nil {
		return nil, fail("group headcount", err)
	}
	return rows, nil
}

// HeadcountTotals returns the number of active employees of the startup and
// their combined salary cost.
func (s *Store) HeadcountTotals(startupID string) (int64, float64, error) {
	var row struct {
		Count  int64
		Salary float64
	}
	err := s.db.Model(&Employee{}).
		Select("COUNT(*) AS count, COALESCE(SUM(salary), 0) AS salary").
		Where("startup_id = ? AND left_at IS NULL", startupID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fail("total headcount", err)
	}
	return row.Count, row.Salary, nil
}

// MetricsByType returns every recorded point of one metric type for the
// startup, in non-decreasing period order.
func (s *Store) MetricsByType(startupID, metricType string) ([]Metric, error) {
	var rows []Metric
	err := s.db.Where("startup_id = ? AND metric_type = ?", startupID, metricType).
		Order("period").
		Find(&rows).Error
	if err != nil {
		return nil, fail("load metric history", err)
	}
	return rows, nil
}
