package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sens-hq/user-service/internal/core/domain"
	"github.com/sens-hq/user-service/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// UserService implements registration and admin CRUD over user records.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// Register creates a new account. Email and username conflicts are reported
// distinctly; this is a public fact (registration says so anyway), unlike the
// login path which stays deliberately vague.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if err := s.checkConflicts(ctx, "", input.Email, input.Username); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created.Sanitized(), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &ports.ListUsersResult{
		Users:      users,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update applies a partial update. Email and username changes are checked for
// conflicts against every other record before writing.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var email, username string
	if input.Email != nil && *input.Email != user.Email {
		email = *input.Email
	}
	if input.Username != nil && *input.Username != user.Username {
		username = *input.Username
	}
	if err := s.checkConflicts(ctx, id, email, username); err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated.Sanitized(), nil
}

// Delete removes the record permanently. There is no tombstone; previously
// issued tokens for the user stay valid until they expire.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// checkConflicts reports whether another record (excluding excludeID) already
// owns the given email or username. Empty values are skipped.
func (s *UserService) checkConflicts(ctx context.Context, excludeID, email, username string) error {
	if email != "" {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err == nil && existing.ID != excludeID {
			return domain.ErrEmailExists
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("check email conflict: %w", err)
		}
	}
	if username != "" {
		existing, err := s.repo.FindByUsername(ctx, username)
		if err == nil && existing.ID != excludeID {
			return domain.ErrUsernameExists
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("check username conflict: %w", err)
		}
	}
	return nil
}
