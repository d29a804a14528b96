package leave

import "context"

type LeaveService interface {
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	UpdateLeaveStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)
}
