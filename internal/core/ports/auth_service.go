package ports

import (
	"context"

	"github.com/sens-hq/user-service/internal/core/domain"
)

// AuthResult is what a successful login returns: a sanitized user projection
// and a signed bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService verifies credentials and issues tokens.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
}
