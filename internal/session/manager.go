// Package session owns the caller's authentication state. Everything that
// needs the current credential reads it from one Manager instead of
// re-reading persisted storage on every call.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/newshub-app/interactions/internal/datasources"
	"github.com/newshub-app/interactions/internal/domain"
)

type persistedSession struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type Manager struct {
	kv datasources.KVStore

	mu        sync.Mutex
	current   domain.Session
	listeners []func(domain.Session)
}

// NewManager restores any persisted session. A corrupt persisted payload
// restores as anonymous.
func NewManager(ctx context.Context, kv datasources.KVStore) (*Manager, error) {
	m := &Manager{kv: kv}

	var p persistedSession
	ok, err := kv.GetJSON(ctx, datasources.NamespaceSession, &p)
	if err != nil {
		return nil, fmt.Errorf("restoring persisted session: %w", err)
	}
	if ok {
		m.current = domain.Session{Token: p.Token, UserID: p.UserID, Username: p.Username}
	}
	return m, nil
}

func (m *Manager) Current() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// OnChange registers a listener called whenever the session changes.
// Listeners run synchronously on the mutating call.
func (m *Manager) OnChange(fn func(domain.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Manager) SignIn(ctx context.Context, token, userID, username string) error {
	session := domain.Session{Token: token, UserID: userID, Username: username}
	if err := m.kv.SetJSON(ctx, datasources.NamespaceSession, persistedSession{
		Token:    token,
		UserID:   userID,
		Username: username,
	}); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	m.swap(session)
	return nil
}

func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.kv.Delete(ctx, datasources.NamespaceSession); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}

	m.swap(domain.Session{})
	return nil
}

func (m *Manager) swap(session domain.Session) {
	m.mu.Lock()
	m.current = session
	listeners := append(([]func(domain.Session))(nil), m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(session)
	}
}
