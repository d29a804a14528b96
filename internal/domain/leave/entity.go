package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// Transitions returns the statuses a request may move to. Only a pending
// request can change; approved and rejected are terminal.
func (s LeaveRequestStatus) Transitions() []LeaveRequestStatus {
	if s == LeaveRequestStatusPending {
		return []LeaveRequestStatus{LeaveRequestStatusApproved, LeaveRequestStatusRejected}
	}
	return nil
}

func (s LeaveRequestStatus) CanTransitionTo(next LeaveRequestStatus) bool {
	for _, allowed := range s.Transitions() {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s LeaveRequestStatus) IsTerminal() bool {
	return len(s.Transitions()) == 0
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         int64
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     LeaveRequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
}
