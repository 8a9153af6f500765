package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/api/middleware"
	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

type stubUserDirectory struct {
	listFn       func(ctx context.Context) ([]domain.User, error)
	listByRoleFn func(ctx context.Context, role domain.Role) ([]domain.User, error)
	createFn     func(ctx context.Context, in ports.UserInput) (*domain.User, error)
}

func (s *stubUserDirectory) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserDirectory) Get(ctx context.Context, id int64) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (s *stubUserDirectory) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.listByRoleFn(ctx, role)
}

func (s *stubUserDirectory) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserDirectory) Update(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (s *stubUserDirectory) Deactivate(ctx context.Context, id int64) error { return nil }
func (s *stubUserDirectory) Delete(ctx context.Context, id int64) error     { return nil }

// stubReports fails every call; the pages must render without the counts.
type stubReports struct{}

func (stubReports) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return nil, errors.New("unavailable")
}

func (stubReports) UserStats(ctx context.Context) (*domain.UserStats, error) {
	return nil, errors.New("unavailable")
}

func (stubReports) AppointmentStats(ctx context.Context) (*domain.AppointmentStats, error) {
	return nil, errors.New("unavailable")
}

func (stubReports) CreateAdmin(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	return nil, errors.New("unavailable")
}

func adminIdentity() *domain.Identity {
	return &domain.Identity{UserID: 1, Username: "admin", FirstName: "Ada", Role: domain.RoleAdmin}
}

func adminContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextIdentity, adminIdentity())
	return c, rec
}

func TestAdminHandler_Users_RendersList(t *testing.T) {
	e := echo.New()
	users := &stubUserDirectory{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{ID: 2, Username: "drsmith", Role: domain.RoleDoctor}}, nil
		},
	}
	h := NewAdminHandler(stubReports{}, users, nil, nil, nil, zerolog.Nop())

	c, rec := adminContext(e, http.MethodGet, "/admin/users", "")
	if err := h.Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "User Management" {
		t.Fatalf("unexpected title: %v", resp["title"])
	}
	if _, hasNotice := resp["notice"]; hasNotice {
		t.Fatalf("no notice expected on a clean read")
	}
	menu, ok := resp["menu"].([]any)
	if !ok || len(menu) != 5 {
		t.Fatalf("expected the 5-item admin menu, got %v", resp["menu"])
	}
}

func TestAdminHandler_Users_EmptyStateOnFetchFailure(t *testing.T) {
	e := echo.New()
	users := &stubUserDirectory{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := NewAdminHandler(stubReports{}, users, nil, nil, nil, zerolog.Nop())

	c, rec := adminContext(e, http.MethodGet, "/admin/users", "")
	if err := h.Users(c); err != nil {
		t.Fatalf("a failed read must still render: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["notice"] != "No data available right now." {
		t.Fatalf("expected empty-state notice, got %v", resp["notice"])
	}
	data := resp["data"].(map[string]any)
	list, ok := data["users"].([]any)
	if !ok || len(list) != 0 {
		t.Fatalf("expected empty user list, got %v", data["users"])
	}
}

func TestAdminHandler_Users_RoleFilter(t *testing.T) {
	e := echo.New()
	var filtered domain.Role
	users := &stubUserDirectory{
		listByRoleFn: func(ctx context.Context, role domain.Role) ([]domain.User, error) {
			filtered = role
			return []domain.User{}, nil
		},
	}
	h := NewAdminHandler(stubReports{}, users, nil, nil, nil, zerolog.Nop())

	c, _ := adminContext(e, http.MethodGet, "/admin/users?role=DOCTOR", "")
	if err := h.Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if filtered != domain.RoleDoctor {
		t.Fatalf("expected DOCTOR filter, got %q", filtered)
	}
}

func TestAdminHandler_CreateUser_InvalidRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	users := &stubUserDirectory{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAdminHandler(stubReports{}, users, nil, nil, nil, zerolog.Nop())

	body := `{"username":"x","password":"longenough","firstName":"A","lastName":"B","role":"SUPERUSER"}`
	c, rec := adminContext(e, http.MethodPost, "/admin/users", body)
	_ = h.CreateUser(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_CreateUser_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	users := &stubUserDirectory{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.User, error) {
			if in.Username != "drjones" || in.Role != domain.RoleDoctor {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: 3, Username: in.Username, Role: in.Role}, nil
		},
	}
	h := NewAdminHandler(stubReports{}, users, nil, nil, nil, zerolog.Nop())

	body := `{"username":"drjones","password":"longenough","firstName":"Sam","lastName":"Jones","role":"DOCTOR"}`
	c, rec := adminContext(e, http.MethodPost, "/admin/users", body)
	if err := h.CreateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
