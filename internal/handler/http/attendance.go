package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListAttendance implements AttendanceHandler. Callers without the view-all
// permission only ever see their own records.
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	query := r.URL.Query()
	date := query.Get("date_filter")
	if date == "" {
		date = query.Get("date")
	}
	filter := attendance.NewFilter(query.Get("employee_id"), date)

	if !claims.Can(user.PermissionAttendanceViewAll) {
		if claims.EmployeeID == nil {
			response.Success(w, []attendance.AttendanceResponse{})
			return
		}
		if filter.EmployeeID != nil && *filter.EmployeeID != *claims.EmployeeID {
			response.Forbidden(w, "You can only view your own attendance")
			return
		}
		filter.EmployeeID = claims.EmployeeID
	}

	records, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MarkAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "employee_id", req.EmployeeID, "date", req.Date, "status", req.Status)
	response.Created(w, resp)
}

// DeleteAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid attendance ID", nil)
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Attendance record deleted successfully")
}
