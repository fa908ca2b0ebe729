package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newshub-app/interactions/internal/datasources/sqlite"
	"github.com/newshub-app/interactions/internal/domain"
)

func setupStore(t *testing.T) *sqlite.Repository {
	t.Helper()

	db, err := sqlite.Connect(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := sqlite.New(db)
	require.NoError(t, err)
	return repo
}

func TestManager_SignInPersistsAcrossRestart(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	m, err := NewManager(ctx, store)
	require.NoError(t, err)
	assert.True(t, m.Current().Anonymous())

	require.NoError(t, m.SignIn(ctx, "token-1", "user-1", "alice"))
	assert.Equal(t, domain.Session{Token: "token-1", UserID: "user-1", Username: "alice"}, m.Current())

	// A fresh manager over the same store restores the session.
	restored, err := NewManager(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, m.Current(), restored.Current())
}

func TestManager_SignOut(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	m, err := NewManager(ctx, store)
	require.NoError(t, err)
	require.NoError(t, m.SignIn(ctx, "token-1", "user-1", "alice"))
	require.NoError(t, m.SignOut(ctx))
	assert.True(t, m.Current().Anonymous())

	restored, err := NewManager(ctx, store)
	require.NoError(t, err)
	assert.True(t, restored.Current().Anonymous())
}

func TestManager_OnChange(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	m, err := NewManager(ctx, store)
	require.NoError(t, err)

	var seen []domain.Session
	m.OnChange(func(s domain.Session) { seen = append(seen, s) })

	require.NoError(t, m.SignIn(ctx, "token-1", "user-1", "alice"))
	require.NoError(t, m.SignOut(ctx))

	require.Len(t, seen, 2)
	assert.Equal(t, "user-1", seen[0].UserID)
	assert.True(t, seen[1].Anonymous())
}
