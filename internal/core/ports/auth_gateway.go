package ports

import (
	"context"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

// AuthGateway is the single source of truth for "who is logged in". All
// session state mutations go through it; handlers never touch the session
// store directly.
type AuthGateway interface {
	// Login exchanges credentials for an identity and a new session ID.
	// Failed attempts return *domain.AuthError and leave no session behind.
	Login(ctx context.Context, username, password string) (string, *domain.Identity, error)
	// Resolve returns the identity persisted under sid, domain.ErrNoSession
	// when absent.
	Resolve(ctx context.Context, sid string) (*domain.Identity, error)
	// Logout always clears the local session; the backend notification is
	// best-effort.
	Logout(ctx context.Context, sid string) error
}
