package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: employees",
		Query: `
		CREATE TABLE IF NOT EXISTS employees (
			employee_id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			department TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT employees_email_key UNIQUE (email)
		);`,
	},
	{
		Index:       2,
		Description: "Create table: attendance",
		Query: `
		CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL REFERENCES employees(employee_id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('Present', 'Absent')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT attendance_employee_date_key UNIQUE (employee_id, date)
		);
		CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date DESC);`,
	},
	{
		Index:       3,
		Description: "Create table: users",
		Query: `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('admin', 'employee')),
			employee_id TEXT REFERENCES employees(employee_id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	},
	{
		Index:       4,
		Description: "Create table: leave_requests",
		Query: `
		CREATE TABLE IF NOT EXISTS leave_requests (
			id BIGSERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL REFERENCES employees(employee_id) ON DELETE CASCADE,
			leave_type TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			reason TEXT,
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (end_date >= start_date)
		);
		CREATE INDEX IF NOT EXISTS idx_leave_requests_employee ON leave_requests (employee_id);`,
	},
}

// Migrate applies every scheme newer than the recorded version. Each scheme
// runs in its own transaction together with the version bump.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (version INT NOT NULL);
		INSERT INTO schema_migrations (version)
		SELECT 0 WHERE NOT EXISTS (SELECT 1 FROM schema_migrations);
	`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var version int
	if err := db.QueryRow(ctx, `SELECT version FROM schema_migrations`).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, s := range scheme {
		if s.Index <= version {
			continue
		}
		err := WithTransaction(ctx, db, func(ctx context.Context) error {
			q := GetQuerier(ctx, db)
			if _, err := q.Exec(ctx, s.Query); err != nil {
				return err
			}
			_, err := q.Exec(ctx, `UPDATE schema_migrations SET version = $1`, s.Index)
			return err
		})
		if err != nil {
			return fmt.Errorf("migrate version %d (%s): %w", s.Index, s.Description, err)
		}
		slog.Info("Migration applied", "version", s.Index, "description", s.Description)
	}
	return nil
}

type seedEmployee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

type seedAttendance struct {
	EmployeeID string
	Date       string
	Status     string
}

type seedUser struct {
	Email      string
	FullName   string
	Password   string
	Role       user.Role
	EmployeeID *string
}

var (
	demoEmployees = []seedEmployee{
		{"EMP001", "John Doe", "john.doe@company.com", "Engineering"},
		{"EMP002", "Jane Smith", "jane.smith@company.com", "Marketing"},
		{"EMP003", "Bob Johnson", "bob.johnson@company.com", "Sales"},
	}
	demoAttendance = []seedAttendance{
		{"EMP001", "2024-02-01", "Present"},
		{"EMP001", "2024-02-02", "Present"},
		{"EMP002", "2024-02-01", "Present"},
		{"EMP002", "2024-02-02", "Absent"},
	}
	demoEmployeeID = "EMP001"
	demoUsers      = []seedUser{
		{"admin@company.com", "Admin User", "admin123", user.RoleAdmin, nil},
		{"john.doe@company.com", "John Doe", "john123", user.RoleEmployee, &demoEmployeeID},
	}
)

// SeedDemoData inserts the demo employees, attendance and login accounts.
// Existing rows are left untouched, except that demo account passwords are
// reset to their documented values.
func SeedDemoData(ctx context.Context, db *database.DB) error {
	users := NewUserRepository(db)

	return WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)

		batch := &pgx.Batch{}
		for _, e := range demoEmployees {
			batch.Queue(`
				INSERT INTO employees (employee_id, full_name, email, department)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT DO NOTHING`,
				e.EmployeeID, e.FullName, e.Email, e.Department)
		}
		for _, a := range demoAttendance {
			batch.Queue(`
				INSERT INTO attendance (employee_id, date, status)
				VALUES ($1, $2::date, $3)
				ON CONFLICT DO NOTHING`,
				a.EmployeeID, a.Date, a.Status)
		}

		tx, ok := q.(pgx.Tx)
		if !ok {
			return errors.New("seed must run inside a transaction")
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed employees and attendance: %w", err)
		}

		for _, su := range demoUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			if _, err := users.Upsert(ctx, user.User{
				Email:        su.Email,
				FullName:     su.FullName,
				PasswordHash: string(hash),
				Role:         su.Role,
				EmployeeID:   su.EmployeeID,
			}); err != nil {
				return err
			}
		}

		slog.Info("Demo data seeded", "employees", len(demoEmployees), "users", len(demoUsers))
		return nil
	})
}
