package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.LoginResponse, error) {
	loginReq.Email = strings.TrimSpace(loginReq.Email)
	if err := loginReq.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		UserResponse:         user.ToResponse(userData),
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	if err := a.Service.RevokeToken(token); err != nil {
		return auth.ErrInvalidToken
	}
	return nil
}
