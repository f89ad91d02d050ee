package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sens-hq/user-service/internal/core/domain"
	"github.com/sens-hq/user-service/internal/core/ports"
)

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewBcryptHasher(bcrypt.MinCost), zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     "alice@example.com",
		Username:  "alice",
		Password:  "pass123",
		FirstName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new account to be active")
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "pass123" || stored.PasswordHash == "" {
		t.Fatalf("expected stored password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "bob@example.com", Username: "bob", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "bob@example.com", Username: "robert", Password: "pass"})
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "bob@example.com", Username: "bob", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "other@example.com", Username: "bob", Password: "pass"})
	if !errors.Is(err, domain.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "eve@example.com",
		Username: "eve",
		Password: "pass",
		Role:     domain.Role("SUPERUSER"),
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice@example.com", "pass", domain.RoleUser, true)
	svc := newUserService(repo)

	user, err := svc.GetByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List_Pagination(t *testing.T) {
	repo := newStubUserRepo()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"} {
		seedUser(t, repo, email, "pass", domain.RoleUser, true)
	}
	svc := newUserService(repo)

	result, err := svc.List(context.Background(), ports.ListUsersFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 5 {
		t.Fatalf("expected total 5, got %d", result.Total)
	}
	if len(result.Users) != 2 {
		t.Fatalf("expected 2 users on page 2, got %d", len(result.Users))
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", result.TotalPages)
	}
	for _, u := range result.Users {
		if u.PasswordHash != "" {
			t.Fatalf("password hash leaked in list result")
		}
	}
}

func TestUserService_List_Defaults(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@x.com", "pass", domain.RoleUser, true)
	svc := newUserService(repo)

	result, err := svc.List(context.Background(), ports.ListUsersFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Page != 1 || result.Limit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got page=%d limit=%d", result.Page, result.Limit)
	}
}

func TestUserService_List_Filters(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin@x.com", "pass", domain.RoleAdmin, true)
	seedUser(t, repo, "user@x.com", "pass", domain.RoleUser, true)
	seedUser(t, repo, "inactive@x.com", "pass", domain.RoleUser, false)
	svc := newUserService(repo)

	admin := domain.RoleAdmin
	result, err := svc.List(context.Background(), ports.ListUsersFilter{Role: &admin})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 1 || result.Users[0].Email != "admin@x.com" {
		t.Fatalf("role filter failed: %+v", result)
	}

	result, err = svc.List(context.Background(), ports.ListUsersFilter{IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 1 || result.Users[0].Email != "inactive@x.com" {
		t.Fatalf("is_active filter failed: %+v", result)
	}
}

func TestUserService_Update_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice@example.com", "pass", domain.RoleUser, true)
	svc := newUserService(repo)

	admin := domain.RoleAdmin
	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{
		FirstName: strPtr("Alice"),
		Role:      &admin,
		IsActive:  boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Alice" || updated.Role != domain.RoleAdmin || updated.IsActive {
		t.Fatalf("update not applied: %+v", updated)
	}
	// Untouched fields survive.
	if updated.Email != "alice@example.com" {
		t.Fatalf("email clobbered: %s", updated.Email)
	}
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "taken@example.com", "pass", domain.RoleUser, true)
	target := seedUser(t, repo, "alice@example.com", "pass", domain.RoleUser, true)
	svc := newUserService(repo)

	_, err := svc.Update(context.Background(), target.ID, ports.UpdateUserInput{Email: strPtr("taken@example.com")})
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserService_Update_SameEmailNoConflict(t *testing.T) {
	repo := newStubUserRepo()
	target := seedUser(t, repo, "alice@example.com", "pass", domain.RoleUser, true)
	svc := newUserService(repo)

	// Re-submitting the current email must not count as a conflict.
	if _, err := svc.Update(context.Background(), target.ID, ports.UpdateUserInput{Email: strPtr("alice@example.com")}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{FirstName: strPtr("X")})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice@example.com", "pass", domain.RoleUser, true)
	svc := newUserService(repo)

	if err := svc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}

	if err := svc.Delete(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
