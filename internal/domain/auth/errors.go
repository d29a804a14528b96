package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)
