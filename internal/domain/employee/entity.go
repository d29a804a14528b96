package employee

import "time"

// Employee is keyed by a caller-assigned EmployeeID (e.g. "EMP001").
type Employee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
}
