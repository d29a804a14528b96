package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, full_name, email, department, created_at
		FROM employees
		ORDER BY created_at DESC, employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, full_name, email, department, created_at
		FROM employees
		WHERE employee_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// ExistsByEmployeeIDOrEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE ($1::text IS NOT NULL AND employee_id = $1)
			   OR ($2::text IS NOT NULL AND LOWER(email) = LOWER($2))
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING employee_id, full_name, email, department, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	).Scan(&created.EmployeeID, &created.FullName, &created.Email, &created.Department, &created.CreatedAt)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgUniqueViolation {
			if constraint == "employees_email_key" {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Delete implements employee.EmployeeRepository. Attendance rows go with the
// employee through ON DELETE CASCADE.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
