package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.EmployeeID, &u.CreatedAt)
	return u, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, password_hash, role, employee_id, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, password_hash, role, employee_id, created_at
		FROM users
		WHERE id = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return u, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, password_hash, role, employee_id, created_at
		FROM users
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Upsert implements user.UserRepository.
func (r *userRepositoryImpl) Upsert(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, full_name, password_hash, role, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			employee_id = EXCLUDED.employee_id
		RETURNING id, email, full_name, password_hash, role, employee_id, created_at
	`

	saved, err := scanUser(q.QueryRow(ctx, query, u.Email, u.FullName, u.PasswordHash, u.Role, u.EmployeeID))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to upsert user %s: %w", u.Email, err)
	}
	return saved, nil
}
