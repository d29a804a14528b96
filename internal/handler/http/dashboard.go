package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
)

type DashboardHandler interface {
	GetEmployeeStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetEmployeeStats implements DashboardHandler.
func (h *dashboardHandlerImpl) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetEmployeeStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
