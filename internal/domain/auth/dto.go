package auth

import (
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Please enter a valid email address",
		})
	}

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginResponse is the user object returned by a successful login. The
// access token authorizes admin-only endpoints.
type LoginResponse struct {
	user.UserResponse
	AccessToken          string `json:"access_token,omitempty"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in,omitempty"`
}
