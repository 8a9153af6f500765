package ports

import (
	"context"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

// SessionStore persists the authenticated identity across requests under a
// single slot per session ID.
//
// Load fails soft: a missing or unparseable slot yields domain.ErrNoSession,
// never a panic. An unreachable store yields domain.ErrSessionUnavailable so
// callers can distinguish "logged out" from "cannot tell right now".
type SessionStore interface {
	Load(ctx context.Context, sid string) (*domain.Identity, error)
	Save(ctx context.Context, sid string, identity *domain.Identity) error
	Clear(ctx context.Context, sid string) error
}
