package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "Please select an employee",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "Leave type is required",
		})
	}

	var start, end time.Time
	var startOK, endOK bool

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date is required",
		})
	} else if start, startOK = validator.IsValidDate(strings.TrimSpace(r.StartDate)); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date is required",
		})
	} else if end, endOK = validator.IsValidDate(strings.TrimSpace(r.EndDate)); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date must not be before start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "Leave request ID is required",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{string(LeaveRequestStatusApproved), string(LeaveRequestStatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestFilter narrows a list query; a nil UserID lists every request.
type LeaveRequestFilter struct {
	UserID *string
}

type LeaveRequestResponse struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name,omitempty"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     *string   `json:"reason,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Transitions exposes the actions available for the request as rendered.
func (r LeaveRequestResponse) Transitions() []LeaveRequestStatus {
	return LeaveRequestStatus(r.Status).Transitions()
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(validator.DateLayout),
		EndDate:    l.EndDate.Format(validator.DateLayout),
		Reason:     l.Reason,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
	}
	if l.EmployeeName != nil {
		resp.FullName = *l.EmployeeName
	}
	return resp
}
