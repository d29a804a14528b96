package attendance

import "context"

type AttendanceRepository interface {
	// List returns records newest date first, narrowed by the non-nil filter fields.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	Create(ctx context.Context, record Attendance) (Attendance, error)
	// Delete returns ErrAttendanceNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
