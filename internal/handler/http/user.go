package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
)

type UserHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// ListUsers implements UserHandler.
func (h *userHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}
