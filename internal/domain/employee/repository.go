package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email *string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Delete returns ErrEmployeeNotFound when no row matched.
	Delete(ctx context.Context, employeeID string) error
}
