package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
	lr.status, lr.created_at, lr.updated_at, e.full_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.CreatedAt, &l.UpdatedAt, &l.EmployeeName,
	)
	return l, err
}

// List implements leave.LeaveRequestRepository. A user filter matches the
// requests of the employee linked to that user.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		LEFT JOIN employees e ON lr.employee_id = e.employee_id
	`
	var args []any
	if filter.UserID != nil {
		query += ` JOIN users u ON u.employee_id = lr.employee_id WHERE u.id::text = $1`
		args = append(args, *filter.UserID)
	}
	query += ` ORDER BY lr.created_at DESC, lr.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		LEFT JOIN employees e ON lr.employee_id = e.employee_id
		WHERE lr.id = $1
	`

	l, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %d: %w", id, err)
	}
	return l, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate, request.Reason, request.Status,
	).Scan(&id)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, from, to leave.LeaveRequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update leave request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}
