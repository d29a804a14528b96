package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.ToResponse(a))
	}
	return responses
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if filter.Date != nil {
		if _, ok := validator.IsValidDate(*filter.Date); !ok {
			return nil, validator.ValidationErrors{{
				Field:   "date_filter",
				Message: "Date must be in YYYY-MM-DD format",
			}}
		}
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// ListEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEmployeeAttendance(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.AttendanceFilter{EmployeeID: &employeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MessageResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.MessageResponse{}, err
		}
		return attendance.MessageResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := validator.IsValidDate(strings.TrimSpace(req.Date))
	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceAlreadyMarked) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.MessageResponse{}, err
		}
		return attendance.MessageResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return attendance.MessageResponse{
		Message: "Attendance marked successfully",
		ID:      created.ID,
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}
