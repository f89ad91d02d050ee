package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sens-hq/user-service/internal/core/domain"
	"github.com/sens-hq/user-service/internal/core/ports"
)

const defaultTokenTTL = 168 * time.Hour

// tokenClaims is the wire shape of the identity payload.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256-signed tokens. Verification is
// stateless: any process holding the same secret can verify independently,
// and no token can be revoked before its expiry.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTService) Issue(claims ports.TokenClaims) (string, error) {
	now := time.Now()
	tc := tokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	return t.SignedString(s.secret)
}

// Verify checks signature, structure, and expiry. An expired-but-otherwise
// valid token yields domain.ErrExpiredToken; every other failure, including
// an unexpected signing method, yields domain.ErrInvalidToken.
func (s *JWTService) Verify(token string) (*ports.TokenClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	var tc tokenClaims
	_, err := parser.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	role, err := domain.ParseRole(tc.Role)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID: tc.UserID,
		Email:  tc.Email,
		Role:   role,
	}, nil
}
