package user

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(repo user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: repo}
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}
