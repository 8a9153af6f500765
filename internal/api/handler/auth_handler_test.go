package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/api/middleware"
	"github.com/medisync/healthcare-portal/internal/core/domain"
)

type stubGateway struct {
	loginFn   func(ctx context.Context, username, password string) (string, *domain.Identity, error)
	resolveFn func(ctx context.Context, sid string) (*domain.Identity, error)
	logoutFn  func(ctx context.Context, sid string) error
}

func (s *stubGateway) Login(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubGateway) Resolve(ctx context.Context, sid string) (*domain.Identity, error) {
	if s.resolveFn == nil {
		return nil, domain.ErrNoSession
	}
	return s.resolveFn(ctx, sid)
}

func (s *stubGateway) Logout(ctx context.Context, sid string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, sid)
}

func testCodec() *middleware.CookieCodec {
	return middleware.NewCookieCodec("healthcare_session", "test-secret", time.Hour)
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubGateway{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Identity, error) {
			if username != "drsmith" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "sid-1", &domain.Identity{
				UserID:    7,
				Username:  "drsmith",
				FirstName: "Jane",
				LastName:  "Smith",
				Role:      domain.RoleDoctor,
			}, nil
		},
	}
	h := NewAuthHandler(stub, testCodec(), zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"drsmith","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success, got %v", resp)
	}
	if resp["redirect"] != "/doctor/dashboard" {
		t.Fatalf("expected doctor redirect, got %v", resp["redirect"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "drsmith" || user["fullName"] != "Jane Smith" {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "healthcare_session" || cookies[0].Value == "" {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubGateway{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Identity, error) {
			return "", nil, domain.NewAuthError("Invalid credentials")
		},
	}
	h := NewAuthHandler(stub, testCodec(), zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"drsmith","password":"wrong"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// The upstream message passes through untouched.
	if resp["message"] != "Invalid credentials" {
		t.Fatalf("expected backend message, got %v", resp["message"])
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be set on failure")
	}
}

func TestAuthHandler_Login_InFlight(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubGateway{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Identity, error) {
			return "", nil, domain.ErrLoginInFlight
		},
	}
	h := NewAuthHandler(stub, testCodec(), zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"drsmith","password":"secret"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubGateway{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Identity, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, testCodec(), zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"drsmith"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_LoginPage_RedirectsAuthenticated(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubGateway{}, testCodec(), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextIdentity, &domain.Identity{Role: domain.RolePatient})

	if err := h.LoginPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/patient/dashboard" {
		t.Fatalf("expected patient dashboard, got %s", loc)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := echo.New()
	cleared := ""
	stub := &stubGateway{
		logoutFn: func(ctx context.Context, sid string) error {
			cleared = sid
			return nil
		},
	}
	codec := testCodec()
	h := NewAuthHandler(stub, codec, zerolog.Nop())

	cookie, err := codec.Issue("sid-9")
	if err != nil {
		t.Fatalf("issue cookie: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if cleared != "sid-9" {
		t.Fatalf("expected gateway logout for sid-9, got %q", cleared)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["redirect"] != "/login" {
		t.Fatalf("unexpected response: %v", resp)
	}
}
