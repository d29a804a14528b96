package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR administrator - full access
	RoleEmployee Role = "employee" // Regular employee - own data only
)

type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
