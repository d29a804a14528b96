package leave

import "context"

type LeaveRequestRepository interface {
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	// UpdateStatus moves a request out of "from"; it returns
	// ErrLeaveRequestAlreadyProcessed when the stored status is not "from".
	UpdateStatus(ctx context.Context, id int64, from, to LeaveRequestStatus) error
}
