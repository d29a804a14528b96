package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []any
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d::date", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name, e.department
		FROM attendance a
		JOIN employees e ON a.employee_id = e.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt, &a.FullName, &a.Department); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, status, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, record.EmployeeID, record.Date, record.Status).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgUniqueViolation:
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		case pgForeignKeyViolation:
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
