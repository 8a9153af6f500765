package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

type stubBackend struct {
	identity *domain.Identity
	loginErr error

	logoutErr   error
	logoutCalls int

	// when set, Login blocks until the channel is closed
	block chan struct{}
}

func (b *stubBackend) Login(_ context.Context, _, _ string) (*domain.Identity, error) {
	if b.block != nil {
		<-b.block
	}
	if b.loginErr != nil {
		return nil, b.loginErr
	}
	clone := *b.identity
	return &clone, nil
}

func (b *stubBackend) Logout(_ context.Context) error {
	b.logoutCalls++
	return b.logoutErr
}

type stubStore struct {
	slots   map[string]*domain.Identity
	saveErr error
	loadErr error
}

func newStubStore() *stubStore {
	return &stubStore{slots: make(map[string]*domain.Identity)}
}

func (s *stubStore) Load(_ context.Context, sid string) (*domain.Identity, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	identity, ok := s.slots[sid]
	if !ok {
		return nil, domain.ErrNoSession
	}
	clone := *identity
	return &clone, nil
}

func (s *stubStore) Save(_ context.Context, sid string, identity *domain.Identity) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *identity
	s.slots[sid] = &clone
	return nil
}

func (s *stubStore) Clear(_ context.Context, sid string) error {
	delete(s.slots, sid)
	return nil
}

func doctorIdentity() *domain.Identity {
	return &domain.Identity{
		Success:   true,
		UserID:    7,
		Username:  "drsmith",
		FirstName: "Jane",
		LastName:  "Smith",
		Role:      domain.RoleDoctor,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	backend := &stubBackend{identity: doctorIdentity()}
	store := newStubStore()
	svc := NewAuthService(backend, store, zerolog.Nop())

	sid, identity, err := svc.Login(context.Background(), "drsmith", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sid == "" {
		t.Fatalf("expected session id, got empty")
	}
	if identity.Role != domain.RoleDoctor {
		t.Fatalf("unexpected role: %s", identity.Role)
	}

	persisted, err := store.Load(context.Background(), sid)
	if err != nil {
		t.Fatalf("expected persisted identity: %v", err)
	}
	if *persisted != *identity {
		t.Fatalf("persisted identity differs: %+v vs %+v", persisted, identity)
	}
}

func TestAuthService_Login_BackendRejects(t *testing.T) {
	backend := &stubBackend{identity: &domain.Identity{Success: false, Message: "Invalid credentials"}}
	store := newStubStore()
	svc := NewAuthService(backend, store, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "drsmith", "wrong")

	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "Invalid credentials" {
		t.Fatalf("expected backend message verbatim, got %q", authErr.Message)
	}
	if len(store.slots) != 0 {
		t.Fatalf("session store must stay empty after a rejected login")
	}
}

func TestAuthService_Login_TransportFault(t *testing.T) {
	backend := &stubBackend{loginErr: errors.New("connection refused")}
	store := newStubStore()
	svc := NewAuthService(backend, store, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "drsmith", "pass123")

	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != domain.LoginFallbackMessage {
		t.Fatalf("expected fallback message, got %q", authErr.Message)
	}
	if len(store.slots) != 0 {
		t.Fatalf("session store must stay empty after a transport fault")
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(&stubBackend{identity: doctorIdentity()}, newStubStore(), zerolog.Nop())

	var authErr *domain.AuthError
	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError for empty username, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "drsmith", ""); !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError for empty password, got %v", err)
	}
}

func TestAuthService_Login_RejectsConcurrentAttempt(t *testing.T) {
	backend := &stubBackend{identity: doctorIdentity(), block: make(chan struct{})}
	store := newStubStore()
	svc := NewAuthService(backend, store, zerolog.Nop())

	firstDone := make(chan error, 1)
	go func() {
		_, _, err := svc.Login(context.Background(), "drsmith", "pass123")
		firstDone <- err
	}()

	// Wait until the first attempt is registered as in flight.
	for !loginInFlight(svc, "drsmith") {
		time.Sleep(time.Millisecond)
	}

	if _, _, err := svc.Login(context.Background(), "drsmith", "pass123"); !errors.Is(err, domain.ErrLoginInFlight) {
		t.Fatalf("expected ErrLoginInFlight, got %v", err)
	}

	close(backend.block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	// Once resolved, a fresh attempt goes through again.
	backend.block = nil
	if _, _, err := svc.Login(context.Background(), "drsmith", "pass123"); err != nil {
		t.Fatalf("follow-up login failed: %v", err)
	}
}

func loginInFlight(svc *AuthService, username string) bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	_, busy := svc.inFlight[username]
	return busy
}

func TestAuthService_Resolve(t *testing.T) {
	backend := &stubBackend{identity: doctorIdentity()}
	store := newStubStore()
	svc := NewAuthService(backend, store, zerolog.Nop())

	sid, identity, err := svc.Login(context.Background(), "drsmith", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A fresh service over the same store restores the identical identity,
	// like a page reload picking up the persisted slot.
	restored, err := NewAuthService(backend, store, zerolog.Nop()).Resolve(context.Background(), sid)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if *restored != *identity {
		t.Fatalf("restored identity differs: %+v vs %+v", restored, identity)
	}

	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for empty sid, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), "unknown-sid"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for unknown sid, got %v", err)
	}
}

func TestAuthService_Logout_ClearsEvenWhenBackendFails(t *testing.T) {
	backend := &stubBackend{identity: doctorIdentity(), logoutErr: errors.New("backend down")}
	store := newStubStore()
	svc := NewAuthService(backend, store, zerolog.Nop())

	sid, _, err := svc.Login(context.Background(), "drsmith", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("Logout must succeed locally, got %v", err)
	}
	if backend.logoutCalls != 1 {
		t.Fatalf("expected backend notification attempt")
	}
	if _, err := store.Load(context.Background(), sid); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected cleared session, got %v", err)
	}
}
