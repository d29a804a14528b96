package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}
	req.Normalize()

	// Report which key collided before relying on the unique constraints.
	idTaken, err := s.employeeRepo.ExistsByEmployeeIDOrEmail(ctx, &req.EmployeeID, nil)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to check employee ID: %w", err)
	}
	if idTaken {
		return employee.CreateEmployeeResponse{}, employee.ErrEmployeeIDExists
	}

	emailTaken, err := s.employeeRepo.ExistsByEmployeeIDOrEmail(ctx, nil, &req.Email)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return employee.CreateEmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeIDExists) || errors.Is(err, employee.ErrEmailExists) {
			return employee.CreateEmployeeResponse{}, err
		}
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.CreateEmployeeResponse{
		Message:    "Employee created successfully",
		EmployeeID: created.EmployeeID,
	}, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
