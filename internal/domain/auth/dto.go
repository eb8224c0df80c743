package auth

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/pkg/validator"
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
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

// AuthService defines authentication operations. Login returns the response
// body plus the refresh token and its expiry for the cookie.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, string, int64, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (UserResponse, error)
}
