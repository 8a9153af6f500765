package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrLoginInFlight = errors.New("a login attempt is already in progress")
var ErrNoSession = errors.New("no active session")
var ErrSessionUnavailable = errors.New("session store unavailable")
var ErrNotFound = errors.New("resource not found")

// LoginFallbackMessage is shown when the backend fails without providing a
// message of its own.
const LoginFallbackMessage = "Login failed. Please try again."

// AuthError carries the user-displayable message for a failed login attempt.
// The backend-provided message is preserved verbatim when present.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NewAuthError builds an AuthError, substituting the fallback message when
// the backend supplied none.
func NewAuthError(message string) *AuthError {
	if message == "" {
		message = LoginFallbackMessage
	}
	return &AuthError{Message: message}
}

// MutationError marks a failed create, update or delete. The form stays open
// so the user can retry.
type MutationError struct {
	Resource string
	Err      error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("mutate %s: %v", e.Resource, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
