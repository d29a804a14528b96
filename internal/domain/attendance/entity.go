package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Statuses lists the accepted attendance statuses in display order.
func Statuses() []string {
	return []string{string(StatusPresent), string(StatusAbsent)}
}

// Attendance is one (employee, date) record.
type Attendance struct {
	ID         int64
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time

	// Relationships (for responses)
	FullName   *string
	Department *string
}
