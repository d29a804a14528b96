package dashboard

import "context"

// EmployeeStats is one aggregated row, ordered by full name.
type EmployeeStats struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
	Present    int64
	Absent     int64
	Total      int64
}

type DashboardRepository interface {
	GetEmployeeStats(ctx context.Context) ([]EmployeeStats, error)
}
