package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrInvalidStatus                = errors.New("Status must be 'approved' or 'rejected'")
)
