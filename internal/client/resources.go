package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
)

// Login exchanges credentials for the user object and an access token.
func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	var resp auth.LoginResponse
	if err := req.Validate(); err != nil {
		return resp, err
	}
	err := c.do(ctx, http.MethodPost, "/api/login", nil, req, &resp)
	return resp, err
}

// Logout revokes the token the client is bound to.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil, nil)
}

type EmployeeService struct {
	client *Client
}

func (s *EmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var resp []employee.EmployeeResponse
	err := s.client.do(ctx, http.MethodGet, "/api/employees", nil, nil, &resp)
	return resp, err
}

func (s *EmployeeService) Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	var resp employee.EmployeeResponse
	err := s.client.do(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(employeeID), nil, nil, &resp)
	return resp, err
}

// Create validates req and posts it. Invalid input never reaches the network.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	var resp employee.CreateEmployeeResponse
	if err := req.Validate(); err != nil {
		return resp, err
	}
	req.Normalize()
	err := s.client.do(ctx, http.MethodPost, "/api/employees", nil, req, &resp)
	return resp, err
}

func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/employees/"+url.PathEscape(employeeID), nil, nil, nil)
}

// Attendance lists the attendance history of one employee.
func (s *EmployeeService) Attendance(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	var resp []attendance.AttendanceResponse
	err := s.client.do(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(employeeID)+"/attendance", nil, nil, &resp)
	return resp, err
}

type AttendanceService struct {
	client *Client
}

// List fetches attendance records. Only the filter fields that are set are
// sent as query parameters.
func (s *AttendanceService) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	query := url.Values{}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		query.Set("employee_id", *filter.EmployeeID)
	}
	if filter.Date != nil && *filter.Date != "" {
		query.Set("date_filter", *filter.Date)
	}

	var resp []attendance.AttendanceResponse
	err := s.client.do(ctx, http.MethodGet, "/api/attendance", query, nil, &resp)
	return resp, err
}

func (s *AttendanceService) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.MessageResponse, error) {
	var resp attendance.MessageResponse
	if err := req.Validate(); err != nil {
		return resp, err
	}
	err := s.client.do(ctx, http.MethodPost, "/api/attendance", nil, req, &resp)
	return resp, err
}

func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, "/api/attendance/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

type LeaveService struct {
	client *Client
}

func (s *LeaveService) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	query := url.Values{}
	if filter.UserID != nil && *filter.UserID != "" {
		query.Set("user_id", *filter.UserID)
	}

	var resp []leave.LeaveRequestResponse
	err := s.client.do(ctx, http.MethodGet, "/api/leaves", query, nil, &resp)
	return resp, err
}

func (s *LeaveService) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	var resp leave.LeaveRequestResponse
	if err := req.Validate(); err != nil {
		return resp, err
	}
	err := s.client.do(ctx, http.MethodPost, "/api/leaves", nil, req, &resp)
	return resp, err
}

// UpdateStatus approves or rejects a pending leave request.
func (s *LeaveService) UpdateStatus(ctx context.Context, id int64, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	var resp leave.LeaveRequestResponse
	req := leave.UpdateStatusRequest{ID: id, Status: string(status)}
	if err := req.Validate(); err != nil {
		return resp, err
	}
	query := url.Values{"status": []string{req.Status}}
	err := s.client.do(ctx, http.MethodPut, "/api/leaves/"+strconv.FormatInt(id, 10), query, nil, &resp)
	return resp, err
}

type UserService struct {
	client *Client
}

func (s *UserService) List(ctx context.Context) ([]user.UserResponse, error) {
	var resp []user.UserResponse
	err := s.client.do(ctx, http.MethodGet, "/api/users", nil, nil, &resp)
	return resp, err
}

type StatsService struct {
	client *Client
}

// Employees returns the per-employee present/absent aggregates.
func (s *StatsService) Employees(ctx context.Context) ([]dashboard.EmployeeStatResponse, error) {
	var resp []dashboard.EmployeeStatResponse
	err := s.client.do(ctx, http.MethodGet, "/api/stats/employees", nil, nil, &resp)
	return resp, err
}
