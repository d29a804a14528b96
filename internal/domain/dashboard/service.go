package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetEmployeeStats returns present/absent counts for every employee
	GetEmployeeStats(ctx context.Context) ([]EmployeeStatResponse, error)
}
