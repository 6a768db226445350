package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

type stubRoleService struct {
	listFn    func(ctx context.Context) ([]domain.Role, error)
	getFn     func(ctx context.Context, id int64) (*domain.Role, error)
	createFn  func(ctx context.Context, input ports.RoleInput) (*domain.Role, error)
	replaceFn func(ctx context.Context, id int64, input ports.RoleInput) (*domain.Role, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubRoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.listFn(ctx)
}

func (s *stubRoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	return s.getFn(ctx, id)
}

func (s *stubRoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	return s.createFn(ctx, input)
}

func (s *stubRoleService) Replace(ctx context.Context, id int64, input ports.RoleInput) (*domain.Role, error) {
	return s.replaceFn(ctx, id, input)
}

func (s *stubRoleService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestRoleHandler_List(t *testing.T) {
	svc := &stubRoleService{
		listFn: func(_ context.Context) ([]domain.Role, error) {
			return []domain.Role{{ID: 1, Name: "admin"}, {ID: 2, Name: "developer"}}, nil
		},
	}
	h := NewRoleHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []roleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 || resp[1].Name != "developer" {
		t.Fatalf("unexpected listing: %+v", resp)
	}
}

func TestRoleHandler_Create(t *testing.T) {
	svc := &stubRoleService{
		createFn: func(_ context.Context, input ports.RoleInput) (*domain.Role, error) {
			return &domain.Role{ID: 5, Name: input.Name}, nil
		},
	}
	h := NewRoleHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/roles", `{"name":"qa"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRoleHandler_Create_MissingName(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	c, _ := newJSONContext(t, http.MethodPost, "/roles", `{}`)
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestRoleHandler_Replace_Upsert(t *testing.T) {
	svc := &stubRoleService{
		replaceFn: func(_ context.Context, id int64, input ports.RoleInput) (*domain.Role, error) {
			return &domain.Role{ID: id, Name: input.Name}, nil
		},
	}
	h := NewRoleHandler(svc)

	c, rec := newJSONContext(t, http.MethodPut, "/roles/7", `{"name":"manager"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Replace(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var resp roleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 7 || resp.Name != "manager" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRoleHandler_Delete_NotFound(t *testing.T) {
	svc := &stubRoleService{
		deleteFn: func(_ context.Context, _ int64) error {
			return domain.ErrRoleNotFound
		},
	}
	h := NewRoleHandler(svc)

	c, _ := newJSONContext(t, http.MethodDelete, "/roles/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Delete(c); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound to propagate, got %v", err)
	}
}
