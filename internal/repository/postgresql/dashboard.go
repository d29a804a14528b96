package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetEmployeeStats(ctx context.Context) ([]dashboard.EmployeeStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.employee_id,
			e.full_name,
			e.email,
			e.department,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS present,
			COUNT(a.id) FILTER (WHERE a.status = 'Absent') AS absent,
			COUNT(a.id) AS total
		FROM employees e
		LEFT JOIN attendance a ON e.employee_id = a.employee_id
		GROUP BY e.employee_id, e.full_name, e.email, e.department
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee stats: %w", err)
	}
	defer rows.Close()

	stats := []dashboard.EmployeeStats{}
	for rows.Next() {
		var s dashboard.EmployeeStats
		if err := rows.Scan(&s.EmployeeID, &s.FullName, &s.Email, &s.Department, &s.Present, &s.Absent, &s.Total); err != nil {
			return nil, fmt.Errorf("failed to scan employee stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
