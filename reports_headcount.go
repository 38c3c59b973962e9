package startupmetrics

// DepartmentHeadcount aggregates the current employees of one department.
type DepartmentHeadcount struct {
	Count  int64  `json:"count"`
	Salary Amount `json:"salary"`
}

// HeadcountReport describes the current staffing and its cost.
type HeadcountReport struct {
	TotalHeadcount  int64                          `json:"total_headcount"`
	TotalSalaryCost Amount                         `json:"total_salary_cost"`
	ByDepartment    map[string]DepartmentHeadcount `json:"by_department"`
}

// Headcount reports the current staffing grouped by department. Departed
// employees are excluded everywhere; departments left without current
// employees are omitted from the map, not zero-filled.
func (s *Service) Headcount(startupID string) (*HeadcountReport, error) {
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}
	byDept, err := s.store.HeadcountByDepartment(startupID)
	if err != nil {
		return nil, err
	}
	total, salary, err := s.store.HeadcountTotals(startupID)
	if err != nil {
		return nil, err
	}
	report := &HeadcountReport{
		TotalHeadcount:  total,
		TotalSalaryCost: NewAmount(salary),
		ByDepartment:    make(map[string]DepartmentHeadcount, len(byDept)),
	}
	for _, d := range byDept {
		report.ByDepartment[d.Department] = DepartmentHeadcount{
			Count:  d.Count,
			Salary: NewAmount(d.Salary),
		}
	}
	return report, nil
}
