package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	identity := &domain.Identity{Success: true, UserID: 3, Username: "admin", Role: domain.RoleAdmin}
	require.NoError(t, store.Save(ctx, "sid-1", identity))

	loaded, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, *identity, *loaded)

	// Save overwrites the slot unconditionally.
	replacement := &domain.Identity{Success: true, UserID: 9, Username: "patient1", Role: domain.RolePatient}
	require.NoError(t, store.Save(ctx, "sid-1", replacement))

	loaded, err = store.Load(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, domain.RolePatient, loaded.Role)
}

func TestMemoryStore_AbsentAndCleared(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNoSession)

	identity := &domain.Identity{Success: true, Username: "admin", Role: domain.RoleAdmin}
	require.NoError(t, store.Save(ctx, "sid-1", identity))
	require.NoError(t, store.Clear(ctx, "sid-1"))

	_, err = store.Load(ctx, "sid-1")
	require.ErrorIs(t, err, domain.ErrNoSession)

	// Clearing twice is harmless.
	require.NoError(t, store.Clear(ctx, "sid-1"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	identity := &domain.Identity{Success: true, Username: "admin", Role: domain.RoleAdmin}
	require.NoError(t, store.Save(ctx, "sid-1", identity))

	time.Sleep(20 * time.Millisecond)
	_, err := store.Load(ctx, "sid-1")
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	identity := &domain.Identity{Success: true, Username: "admin", Role: domain.RoleAdmin}
	require.NoError(t, store.Save(ctx, "sid-1", identity))

	first, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	first.Role = "TAMPERED"

	second, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, second.Role)
}

func TestSessionKey(t *testing.T) {
	require.Equal(t, "healthcare:session:01ABC", sessionKey("01ABC"))
}
