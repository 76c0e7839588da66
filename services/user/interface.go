package user

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when a known email arrives with the
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthResponse carries the outcome of a successful login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Service handles user authentication.
type Service interface {
	// Login authenticates an email/password pair. Unknown emails are
	// registered on the fly, matching the original onboarding flow.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
}
