package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medisync/healthcare-portal/internal/api/metrics"
	"github.com/medisync/healthcare-portal/internal/core/domain"
)

const loginPath = "/login"

// Guard protects role-scoped destinations. Evaluated fresh on every request
// against the session resolved by the Session middleware:
//
//  1. session store unreachable → 503 retry placeholder
//  2. no identity → redirect to the login page
//  3. identity with an unrecognised role → redirect to the login page
//  4. non-empty allowed set not containing the role → redirect to the
//     identity's own dashboard
//  5. otherwise → render the destination
//
// An empty allowed set means any authenticated (recognised) role.
func Guard(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if stale, _ := c.Get(ContextSessionStale).(bool); stale {
				metrics.GuardDecisionsTotal.WithLabelValues("unavailable").Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "loading",
				})
			}

			identity, ok := Identity(c)
			if !ok {
				metrics.GuardDecisionsTotal.WithLabelValues("login_redirect").Inc()
				return c.Redirect(http.StatusFound, loginPath)
			}

			if !identity.Role.Known() {
				// Unrecognised roles count as unauthenticated.
				metrics.GuardDecisionsTotal.WithLabelValues("login_redirect").Inc()
				return c.Redirect(http.StatusFound, loginPath)
			}

			if len(allowed) > 0 {
				if _, permitted := allowed[identity.Role]; !permitted {
					metrics.GuardDecisionsTotal.WithLabelValues("role_redirect").Inc()
					return c.Redirect(http.StatusFound, identity.Role.DashboardPath())
				}
			}

			metrics.GuardDecisionsTotal.WithLabelValues("render").Inc()
			return next(c)
		}
	}
}
