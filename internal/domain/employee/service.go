package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every employee, newest first
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by its employee ID
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee; employee ID and email must be unique
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)

	// DeleteEmployee removes an employee together with its attendance records
	DeleteEmployee(ctx context.Context, employeeID string) error
}
