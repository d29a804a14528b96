package page

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
)

// The resource services of client.Client satisfy these interfaces.

type EmployeeAPI interface {
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type AttendanceAPI interface {
	List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error)
	Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.MessageResponse, error)
	Delete(ctx context.Context, id int64) error
}

type LeaveAPI interface {
	List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error)
	Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error)
	UpdateStatus(ctx context.Context, id int64, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error)
}

type UserAPI interface {
	List(ctx context.Context) ([]user.UserResponse, error)
}

type StatsAPI interface {
	Employees(ctx context.Context) ([]dashboard.EmployeeStatResponse, error)
}
