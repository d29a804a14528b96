package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, attendanceService attendance.AttendanceService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// GetEmployeeAttendance implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	records, err := h.attendanceService.ListEmployeeAttendance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// CreateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", resp.EmployeeID)
	response.Created(w, resp)
}

// DeleteEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.employeeService.DeleteEmployee(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "employee_id", employeeID)
	response.Message(w, "Employee deleted successfully")
}
