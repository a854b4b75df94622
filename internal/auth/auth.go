package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for every failed login; callers must
// not leak whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is what a successful login resolves to.
type Identity struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Branch string `json:"branch"`
}

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
}
