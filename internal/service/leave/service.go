package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}

// CreateLeaveRequest implements leave.LeaveService. New requests always
// start pending.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, _ := validator.IsValidDate(strings.TrimSpace(req.StartDate))
	end, _ := validator.IsValidDate(strings.TrimSpace(req.EndDate))

	var reason *string
	if req.Reason != nil {
		if trimmed := strings.TrimSpace(*req.Reason); trimmed != "" {
			reason = &trimmed
		}
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  strings.TrimSpace(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
		Status:     leave.LeaveRequestStatusPending,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.ToResponse(created), nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	current, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	next := leave.LeaveRequestStatus(req.Status)
	if !current.Status.CanTransitionTo(next) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, current.Status, next); err != nil {
		if errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) || errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	updated, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}
	return leave.ToResponse(updated), nil
}
