package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetEmployeeStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeStats(ctx context.Context) ([]dashboard.EmployeeStatResponse, error) {
	stats, err := s.DashboardRepository.GetEmployeeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee stats: %w", err)
	}

	responses := make([]dashboard.EmployeeStatResponse, 0, len(stats))
	for _, st := range stats {
		responses = append(responses, dashboard.EmployeeStatResponse{
			EmployeeID:   st.EmployeeID,
			FullName:     st.FullName,
			Email:        st.Email,
			Department:   st.Department,
			TotalPresent: st.Present,
			TotalAbsent:  st.Absent,
			TotalRecords: st.Total,
		})
	}
	return responses, nil
}
