package ports

import (
	"context"

	"github.com/sens-hq/user-service/internal/core/domain"
)

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

// UpdateUserInput carries a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Role      *domain.Role
	IsActive  *bool
}

type ListUsersResult struct {
	Users      []domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService covers registration and admin CRUD over user records.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) (*ListUsersResult, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
