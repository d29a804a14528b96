package attendance

import "errors"

var (
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this employee on this date")
	ErrInvalidStatus           = errors.New("status must be 'Present' or 'Absent'")
)
