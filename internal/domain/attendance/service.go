package attendance

import "context"

type AttendanceService interface {
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// ListEmployeeAttendance fails with employee.ErrEmployeeNotFound for an unknown employee
	ListEmployeeAttendance(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	MarkAttendance(ctx context.Context, req CreateAttendanceRequest) (MessageResponse, error)
	DeleteAttendance(ctx context.Context, id int64) error
}
