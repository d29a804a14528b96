package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "Employee ID is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "Full name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Email is required",
		})
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Please enter a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "Department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize trims surrounding whitespace from every field.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
}

type EmployeeResponse struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}
