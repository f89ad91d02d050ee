package ports

import (
	"context"

	"github.com/sens-hq/user-service/internal/core/domain"
)

// ListUsersFilter narrows and pages a user listing. Nil filter fields match
// everything.
type ListUsersFilter struct {
	Role     *domain.Role
	IsActive *bool
	Page     int
	Limit    int
}

// UserRepository defines the persistence interface for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
