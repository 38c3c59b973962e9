package store

import "time"

func (s *Store) insert(op string, row any) error {
	if err := s.db.Create(row).Error; err != nil {
		return fail(op, err)
	}
	return nil
}

// InsertStartup appends a new startup record.
func (s *Store) InsertStartup(row *Startup) error { return s.insert("insert startup", row) }

// InsertCustomer appends a new customer record.
func (s *Store) InsertCustomer(row *Customer) error { return s.insert("insert customer", row) }

// InsertEmployee appends a new employee record.
func (s *Store) InsertEmployee(row *Employee) error { return s.insert("insert employee", row) }

// InsertFundingRound appends a new funding round record.
func (s *Store) InsertFundingRound(row *FundingRound) error {
	return s.insert("insert funding round", row)
}

// InsertMetric appends a new raw metric point.
func (s *Store) InsertMetric(row *Metric) error { return s.insert("insert metric", row) }

// MarkChurned flips the customer to churned at the given instant. The row is
// kept so past cohorts still count it.
func (s *Store) MarkChurned(id string, when time.Time) error {
	res := s.db.Model(&Customer{}).Where("id = ?", id).
		Updates(map[string]any{"status": StatusChurned, "churned_at": when})
	if res.Error != nil {
		return fail("mark customer churned", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "customer", ID: id}
	}
	return nil
}

// MarkDeparted records the departure of an employee at the given instant.
func (s *Store) MarkDeparted(id string, when time.Time) error {
	res := s.db.Model(&Employee{}).Where("id = ?", id).
		Updates(map[string]any{"left_at": when})
	if res.Error != nil {
		return fail("mark employee departed", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "employee", ID: id}
	}
	return nil
}
