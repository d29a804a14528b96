package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "Please select an employee",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date is required",
		})
	} else if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status is required",
		})
	} else if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be 'Present' or 'Absent'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NewCreateAttendanceRequest returns the form defaults: today, Present.
func NewCreateAttendanceRequest(now time.Time) CreateAttendanceRequest {
	return CreateAttendanceRequest{
		Date:   now.Format(validator.DateLayout),
		Status: string(StatusPresent),
	}
}

// AttendanceFilter narrows a list query. Nil fields are not applied.
type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
}

// NewFilter builds a filter from form values; blank values leave the
// corresponding field unset.
func NewFilter(employeeID, date string) AttendanceFilter {
	var f AttendanceFilter
	if v := strings.TrimSpace(employeeID); v != "" {
		f.EmployeeID = &v
	}
	if v := strings.TrimSpace(date); v != "" {
		f.Date = &v
	}
	return f
}

func (f AttendanceFilter) IsEmpty() bool {
	return f.EmployeeID == nil && f.Date == nil
}

type AttendanceResponse struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	FullName   string    `json:"full_name,omitempty"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(validator.DateLayout),
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
	}
	if a.FullName != nil {
		resp.FullName = *a.FullName
	}
	if a.Department != nil {
		resp.Department = *a.Department
	}
	return resp
}
