package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
	UpdateLeaveStatus(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// ListLeaveRequests implements LeaveHandler. Without the view-all
// permission the list is pinned to the caller.
func (h *leaveHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var filter leave.LeaveRequestFilter
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}

	if !claims.Can(user.PermissionLeaveViewAll) {
		self := strconv.FormatInt(claims.UserID, 10)
		if filter.UserID != nil && *filter.UserID != self {
			response.Forbidden(w, "You can only view your own leave requests")
			return
		}
		filter.UserID = &self
	}

	requests, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// CreateLeaveRequest implements LeaveHandler.
func (h *leaveHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if claims.EmployeeID == nil || (req.EmployeeID != "" && req.EmployeeID != *claims.EmployeeID) {
		response.Forbidden(w, "You can only request leave for yourself")
		return
	}
	req.EmployeeID = *claims.EmployeeID

	resp, err := h.leaveService.CreateLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "id", resp.ID, "employee_id", resp.EmployeeID)
	response.Created(w, resp)
}

// UpdateLeaveStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid leave request ID", nil)
		return
	}

	req := leave.UpdateStatusRequest{
		ID:     id,
		Status: r.URL.Query().Get("status"),
	}

	resp, err := h.leaveService.UpdateLeaveStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request processed", "id", resp.ID, "status", resp.Status)
	response.Success(w, resp)
}
