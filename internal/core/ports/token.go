package ports

import "github.com/sens-hq/user-service/internal/core/domain"

// TokenClaims is the identity payload carried inside a signed token and
// re-attached to each authenticated request after verification.
type TokenClaims struct {
	UserID string
	Email  string
	Role   domain.Role
}

type TokenIssuer interface {
	Issue(claims TokenClaims) (string, error)
}

// TokenVerifier checks signature and expiry. Failures are
// domain.ErrExpiredToken or domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

type TokenService interface {
	TokenIssuer
	TokenVerifier
}
