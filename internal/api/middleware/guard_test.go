package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

func guardedRequest(t *testing.T, identity *domain.Identity, stale bool, roles ...domain.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(ContextIdentity, identity)
	}
	if stale {
		c.Set(ContextSessionStale, true)
	}

	rendered := false
	handler := Guard(roles...)(func(c echo.Context) error {
		rendered = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec, rendered
}

func TestGuard_AnonymousAlwaysRedirectsToLogin(t *testing.T) {
	for _, roles := range [][]domain.Role{
		nil,
		{domain.RoleAdmin},
		{domain.RoleDoctor, domain.RoleAdmin},
	} {
		rec, rendered := guardedRequest(t, nil, false, roles...)
		if rendered {
			t.Fatalf("anonymous request must not render (roles=%v)", roles)
		}
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
			t.Fatalf("expected 302 to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestGuard_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	patient := &domain.Identity{Success: true, Username: "patient1", Role: domain.RolePatient}

	rec, rendered := guardedRequest(t, patient, false, domain.RoleAdmin)
	if rendered {
		t.Fatalf("patient must not render an admin page")
	}
	if rec.Header().Get("Location") != "/patient/dashboard" {
		t.Fatalf("expected redirect to /patient/dashboard, got %q", rec.Header().Get("Location"))
	}

	doctor := &domain.Identity{Success: true, Username: "drsmith", Role: domain.RoleDoctor}
	rec, _ = guardedRequest(t, doctor, false, domain.RoleAdmin)
	if rec.Header().Get("Location") != "/doctor/dashboard" {
		t.Fatalf("expected redirect to /doctor/dashboard, got %q", rec.Header().Get("Location"))
	}

	admin := &domain.Identity{Success: true, Username: "admin", Role: domain.RoleAdmin}
	rec, _ = guardedRequest(t, admin, false, domain.RolePatient)
	if rec.Header().Get("Location") != "/admin/dashboard" {
		t.Fatalf("expected redirect to /admin/dashboard, got %q", rec.Header().Get("Location"))
	}
}

func TestGuard_AdminPermittedOnSharedRoutes(t *testing.T) {
	admin := &domain.Identity{Success: true, Username: "admin", Role: domain.RoleAdmin}

	rec, rendered := guardedRequest(t, admin, false, domain.RoleDoctor, domain.RoleAdmin)
	if !rendered {
		t.Fatalf("admin must render where declared, got %d", rec.Code)
	}

	rec, rendered = guardedRequest(t, admin, false, domain.RolePatient, domain.RoleAdmin)
	if !rendered {
		t.Fatalf("admin must render patient routes that declare ADMIN, got %d", rec.Code)
	}
}

func TestGuard_MatchingRoleRenders(t *testing.T) {
	doctor := &domain.Identity{Success: true, Username: "drsmith", Role: domain.RoleDoctor}
	if _, rendered := guardedRequest(t, doctor, false, domain.RoleDoctor, domain.RoleAdmin); !rendered {
		t.Fatalf("doctor must render doctor routes")
	}
}

func TestGuard_EmptyAllowedSetMeansAnyAuthenticated(t *testing.T) {
	patient := &domain.Identity{Success: true, Username: "patient1", Role: domain.RolePatient}
	if _, rendered := guardedRequest(t, patient, false); !rendered {
		t.Fatalf("any recognised role renders when no roles are declared")
	}
}

func TestGuard_UnknownRoleRedirectsToLogin(t *testing.T) {
	ghost := &domain.Identity{Success: true, Username: "ghost", Role: "SUPERUSER"}

	rec, rendered := guardedRequest(t, ghost, false, domain.RoleAdmin)
	if rendered {
		t.Fatalf("unknown role must never render")
	}
	if rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %q", rec.Header().Get("Location"))
	}

	// Even with no declared roles, an unrecognised role reads as
	// unauthenticated.
	rec, rendered = guardedRequest(t, ghost, false)
	if rendered || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got rendered=%v location=%q", rendered, rec.Header().Get("Location"))
	}
}

func TestGuard_StaleSessionRendersLoadingPlaceholder(t *testing.T) {
	rec, rendered := guardedRequest(t, nil, true, domain.RoleAdmin)
	if rendered {
		t.Fatalf("stale session must not render the destination")
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header on the loading placeholder")
	}
}
