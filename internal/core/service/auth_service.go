package service

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// AuthService implements the authentication gateway. It exchanges
// credentials for an identity via the upstream backend and is the only
// component allowed to mutate session state.
type AuthService struct {
	backend ports.AuthBackend
	store   ports.SessionStore
	logger  zerolog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewAuthService(backend ports.AuthBackend, store ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{
		backend:  backend,
		store:    store,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Login exchanges credentials for an identity and persists it under a fresh
// session ID. A second login for the same username while one is still in
// flight is rejected rather than racing two writes to the store. Failed
// attempts leave session state untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	if username == "" || password == "" {
		return "", nil, domain.NewAuthError("Username and password are required")
	}

	if !s.begin(username) {
		return "", nil, domain.ErrLoginInFlight
	}
	defer s.end(username)

	identity, err := s.backend.Login(ctx, username, password)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("login request failed")
		return "", nil, domain.NewAuthError("")
	}
	if !identity.Success {
		return "", nil, domain.NewAuthError(identity.Message)
	}

	sid := ulid.Make().String()
	if err := s.store.Save(ctx, sid, identity); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
		return "", nil, err
	}

	s.logger.Info().Str("username", identity.Username).Str("role", string(identity.Role)).Msg("login succeeded")
	return sid, identity, nil
}

// Resolve loads the identity persisted under sid.
func (s *AuthService) Resolve(ctx context.Context, sid string) (*domain.Identity, error) {
	if sid == "" {
		return nil, domain.ErrNoSession
	}
	return s.store.Load(ctx, sid)
}

// Logout clears the session slot and best-effort notifies the backend.
// It always succeeds locally: failures on either step are logged, never
// returned.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid != "" {
		if err := s.store.Clear(ctx, sid); err != nil {
			s.logger.Error().Err(err).Msg("failed to clear session slot")
		}
	}
	if err := s.backend.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("backend logout notification failed")
	}
	return nil
}

func (s *AuthService) begin(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[username]; busy {
		return false
	}
	s.inFlight[username] = struct{}{}
	return true
}

func (s *AuthService) end(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, username)
}
