package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

// AuthClient implements ports.AuthBackend against /api/auth.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login posts the credentials and decodes the response body whatever the
// status: the backend reports invalid credentials as success=false with a
// message, sometimes on a 4xx. Only transport faults and undecodable bodies
// are errors.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	status, body, err := a.c.roundTrip(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if status >= http.StatusInternalServerError {
		return nil, &StatusError{Code: status, Message: errorMessage(body)}
	}

	var identity domain.Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &identity, nil
}

func (a *AuthClient) Logout(ctx context.Context) error {
	return a.c.post(ctx, "/api/auth/logout", nil, nil)
}
