package session

import (
	"context"
	"sync"
	"time"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

// MemoryStore is an in-process ports.SessionStore for tests and local
// development. Slots expire lazily on read.
type MemoryStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]memorySlot
}

type memorySlot struct {
	identity  domain.Identity
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{ttl: ttl, data: make(map[string]memorySlot)}
}

func (s *MemoryStore) Load(_ context.Context, sid string) (*domain.Identity, error) {
	s.mu.RLock()
	slot, ok := s.data[sid]
	s.mu.RUnlock()

	if !ok || time.Now().After(slot.expiresAt) {
		return nil, domain.ErrNoSession
	}
	identity := slot.identity
	return &identity, nil
}

func (s *MemoryStore) Save(_ context.Context, sid string, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sid] = memorySlot{identity: *identity, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sid)
	return nil
}
