// Package session holds the one authenticated user of a console run and
// decides which view that user sees.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

var (
	ErrInvalidCredentials = auth.ErrInvalidCredentials
	ErrNotLoggedIn        = errors.New("not logged in")
)

type View int

const (
	ViewLogin View = iota
	ViewAdmin
	ViewEmployee
)

func (v View) String() string {
	switch v {
	case ViewAdmin:
		return "admin"
	case ViewEmployee:
		return "employee"
	default:
		return "login"
	}
}

type Session struct {
	mu     sync.RWMutex
	api    *client.Client
	authed *client.Client
	user   *user.UserResponse
	logger *slog.Logger
}

func New(api *client.Client, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{api: api, logger: logger}
}

// Login validates the credentials, then authenticates against the API. Any
// API failure is reported as ErrInvalidCredentials so that unknown users and
// wrong passwords look the same.
func (s *Session) Login(ctx context.Context, email, password string) (user.UserResponse, error) {
	req := auth.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return user.UserResponse{}, err
		}
		s.logger.Debug("login failed", "email", req.Email, "error", err)
		return user.UserResponse{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := resp.UserResponse
	s.user = &u
	s.authed = s.api
	if resp.AccessToken != "" {
		s.authed = s.api.WithToken(resp.AccessToken)
	}
	return u, nil
}

// Logout revokes the token on a best-effort basis and clears the user.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	authed := s.authed
	s.user = nil
	s.authed = nil
	s.mu.Unlock()

	if authed == nil || authed == s.api {
		return
	}
	if err := authed.Logout(ctx); err != nil {
		s.logger.Debug("logout request failed", "error", err)
	}
}

// User returns the authenticated user.
func (s *Session) User() (user.UserResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return user.UserResponse{}, false
	}
	return *s.user, true
}

func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.user == nil:
		return ViewLogin
	case s.user.IsAdmin():
		return ViewAdmin
	default:
		return ViewEmployee
	}
}

func (s *Session) IsAdmin() bool {
	return s.View() == ViewAdmin
}

// Client returns the API client bound to the session token.
func (s *Session) Client() (*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.authed == nil {
		return nil, ErrNotLoggedIn
	}
	return s.authed, nil
}
