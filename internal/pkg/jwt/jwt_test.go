package jwt

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	empID := "EMP001"

	token, expiresAt, err := svc.GenerateAccessToken(user.User{ID: 2, Email: "john.doe@company.com", Role: user.RoleEmployee, EmployeeID: &empID})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "employee", role)
	employeeID, _ := decoded.Get("employee_id")
	assert.Equal(t, "EMP001", employeeID)
}

func TestRevokeAndPrune(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	token, expiresAt, err := svc.GenerateAccessToken(user.User{ID: 1, Email: "admin@company.com", Role: user.RoleAdmin})
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	require.NoError(t, svc.RevokeToken(token))
	assert.True(t, svc.IsTokenRevoked(token))

	assert.Equal(t, 0, svc.PruneRevoked(time.Now()))
	assert.True(t, svc.IsTokenRevoked(token))

	assert.Equal(t, 1, svc.PruneRevoked(time.Unix(expiresAt, 0)))
	assert.False(t, svc.IsTokenRevoked(token))
}

func TestRevokeToken_Invalid(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	assert.Error(t, svc.RevokeToken("not-a-token"))
}
