package domain

import "time"

// Role is the closed set of roles a user can hold. Authorization decisions
// compare against these constants only; free-form role strings are rejected
// at the edges.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether the role is a member of the closed enumeration.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User models an account in the system. PasswordHash never leaves the
// process: it is excluded from JSON and cleared from every service result.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to hand back to callers.
func (u User) Sanitized() *User {
	u.PasswordHash = ""
	return &u
}
