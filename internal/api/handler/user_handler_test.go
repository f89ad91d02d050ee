package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sens-hq/user-service/internal/core/domain"
	"github.com/sens-hq/user-service/internal/core/ports"
)

func TestUserHandler_List_Defaults(t *testing.T) {
	users := &stubUserService{
		listFn: func(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
			if filter.Page != 0 || filter.Limit != 0 {
				t.Fatalf("expected zero-value paging, got %+v", filter)
			}
			if filter.Role != nil || filter.IsActive != nil {
				t.Fatalf("expected no filters, got %+v", filter)
			}
			return &ports.ListUsersResult{
				Users:      []domain.User{*testUser()},
				Total:      1,
				Page:       1,
				Limit:      10,
				TotalPages: 1,
			}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one user in data, got %v", resp["data"])
	}
	pagination, ok := resp["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("expected pagination in response")
	}
	if pagination["total"] != float64(1) || pagination["page"] != float64(1) {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestUserHandler_List_QueryFilters(t *testing.T) {
	users := &stubUserService{
		listFn: func(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
			if filter.Page != 2 || filter.Limit != 5 {
				t.Fatalf("unexpected paging: %+v", filter)
			}
			if filter.Role == nil || *filter.Role != domain.RoleAdmin {
				t.Fatalf("expected ADMIN role filter, got %+v", filter.Role)
			}
			if filter.IsActive == nil || *filter.IsActive {
				t.Fatalf("expected is_active=false filter, got %+v", filter.IsActive)
			}
			return &ports.ListUsersResult{Users: []domain.User{}, Page: 2, Limit: 5}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/users?page=2&limit=5&role=ADMIN&is_active=false", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_List_BadRole(t *testing.T) {
	users := &stubUserService{
		listFn: func(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/users?role=SUPERUSER", "")
	_ = h.List(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Get_Success(t *testing.T) {
	users := &stubUserService{
		getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "user_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return testUser(), nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/users/user_1", "")
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "user_1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	users := &stubUserService{
		getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/users/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = h.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	users := &stubUserService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			if id != "user_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.FirstName == nil || *input.FirstName != "Alicia" {
				t.Fatalf("expected first_name patch, got %+v", input)
			}
			if input.Email != nil {
				t.Fatalf("email should not be set")
			}
			u := testUser()
			u.FirstName = "Alicia"
			return u, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/user_1", `{"first_name":"Alicia"}`)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["first_name"] != "Alicia" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Update_ValidationFailure(t *testing.T) {
	users := &stubUserService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/user_1", `{"email":"not-an-email"}`)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	_ = h.Update(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Update_Conflict(t *testing.T) {
	users := &stubUserService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrUsernameExists
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/user_1", `{"username":"taken"}`)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	_ = h.Update(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	users := &stubUserService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/missing", `{"first_name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = h.Update(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	deleted := ""
	users := &stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodDelete, "/api/users/user_1", "")
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "user_1" {
		t.Fatalf("expected delete of user_1, got %q", deleted)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	users := &stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodDelete, "/api/users/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = h.Delete(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
