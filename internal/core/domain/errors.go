package domain

import "errors"

// Sentinel errors shared across services and the HTTP layer. The API error
// handler maps each to a deterministic status code.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Keeping them indistinguishable prevents user enumeration;
	// do not split this error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAccountDeactivated = errors.New("account is deactivated")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("user with this email already exists")
	ErrUsernameExists = errors.New("user with this username already exists")
	ErrInvalidRole    = errors.New("invalid role")
)
