package middleware

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Claims is the caller identity carried by an access token.
type Claims struct {
	UserID     int64
	Email      string
	Role       user.Role
	EmployeeID *string
}

func (c Claims) Can(permission user.Permission) bool {
	return user.HasPermission(c.Role, permission)
}

// ClaimsFromContext extracts the verified token claims from ctx.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	sub, _ := raw["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Claims{}, fmt.Errorf("sub claim is missing or invalid")
	}

	role, ok := raw["role"].(string)
	if !ok || role == "" {
		return Claims{}, fmt.Errorf("role claim is missing or invalid")
	}

	claims := Claims{UserID: userID, Role: user.Role(role)}
	claims.Email, _ = raw["email"].(string)
	if employeeID, ok := raw["employee_id"].(string); ok && employeeID != "" {
		claims.EmployeeID = &employeeID
	}
	return claims, nil
}
