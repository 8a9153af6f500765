package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/api/metrics"
	"github.com/medisync/healthcare-portal/internal/api/middleware"
	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// AuthHandler owns the login and logout endpoints.
type AuthHandler struct {
	gateway ports.AuthGateway
	codec   *middleware.CookieCodec
	logger  zerolog.Logger
}

func NewAuthHandler(gateway ports.AuthGateway, codec *middleware.CookieCodec, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{gateway: gateway, codec: codec, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginResponse struct {
	Success  bool          `json:"success"`
	Redirect string        `json:"redirect,omitempty"`
	User     *identityView `json:"user,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// LoginPage serves the sign-in view model. Authenticated visitors are sent
// straight to their own dashboard.
//
// @Summary      Sign-in page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if identity, ok := middleware.Identity(c); ok && identity.Role.Known() {
		return c.Redirect(http.StatusFound, identity.Role.DashboardPath())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"title": "Sign in",
	})
}

// Login authenticates the submitted credentials and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  loginResponse
// @Failure      409   {object}  loginResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sid, identity, err := h.gateway.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		var authErr *domain.AuthError
		switch {
		case errors.As(err, &authErr):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, loginResponse{Message: authErr.Message})
		case errors.Is(err, domain.ErrLoginInFlight):
			metrics.LoginsTotal.WithLabelValues("in_flight").Inc()
			return c.JSON(http.StatusConflict, loginResponse{Message: "A login attempt is already in progress."})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	cookie, err := h.codec.Issue(sid)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.logger.Error().Err(err).Msg("failed to issue session cookie")
		return err
	}
	c.SetCookie(cookie)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.ActiveSessions.Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success:  true,
		Redirect: identity.Role.DashboardPath(),
		User:     newIdentityView(identity),
	})
}

// Logout ends the session. It succeeds regardless of backend availability:
// the local slot and cookie are always cleared.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Decode the cookie directly so logout still clears a session the
	// resolver could not read.
	sid, had := h.codec.Decode(c)
	_ = h.gateway.Logout(c.Request().Context(), sid)

	c.SetCookie(h.codec.Expire())
	metrics.LogoutsTotal.Inc()
	if had {
		metrics.ActiveSessions.Dec()
	}
	return c.JSON(http.StatusOK, loginResponse{Success: true, Redirect: "/login"})
}
