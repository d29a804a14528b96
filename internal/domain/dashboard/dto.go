package dashboard

// EmployeeStatResponse is the per-employee attendance aggregate.
type EmployeeStatResponse struct {
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	TotalPresent int64  `json:"total_present"`
	TotalAbsent  int64  `json:"total_absent"`
	TotalRecords int64  `json:"total_records"`
}

// Summary is the headline row of the dashboard.
type Summary struct {
	TotalEmployees int   `json:"total_employees"`
	TotalPresent   int64 `json:"total_present"`
	TotalAbsent    int64 `json:"total_absent"`
	TotalRecords   int64 `json:"total_records"`
}

// Summarize folds per-employee stats into dashboard totals.
func Summarize(stats []EmployeeStatResponse) Summary {
	s := Summary{TotalEmployees: len(stats)}
	for _, st := range stats {
		s.TotalPresent += st.TotalPresent
		s.TotalAbsent += st.TotalAbsent
	}
	s.TotalRecords = s.TotalPresent + s.TotalAbsent
	return s
}
