package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/infrastructure/backend"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	var authErr *domain.AuthError
	switch {
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, authErr.Message
	case errors.Is(err, domain.ErrLoginInFlight):
		return http.StatusConflict, "a login attempt is already in progress"
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrSessionUnavailable):
		return http.StatusServiceUnavailable, "session store unavailable"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	}

	// Failed writes keep the upstream verdict when there is one; anything
	// else means the backend was unreachable.
	var mutErr *domain.MutationError
	if errors.As(err, &mutErr) {
		if errors.Is(err, domain.ErrNotFound) {
			return http.StatusNotFound, mutErr.Resource + " not found"
		}
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			return statusErr.Code, statusErr.Message
		}
		log.Error().
			Err(err).
			Str("resource", mutErr.Resource).
			Msg("mutation failed")
		return http.StatusBadGateway, "could not save changes, please try again"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
