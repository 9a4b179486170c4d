// Package session owns the active user session: restoring it from durable
// storage at startup, exchanging credentials for a new one, and clearing it
// on logout. Installing the bearer token on the API client is part of every
// session transition, never a separate step the caller could forget.
package session

import (
	"context"
	"encoding/json"

	"bloglist/internal/models"
	"bloglist/internal/observability"
	"bloglist/internal/storage"
)

// StorageKey is the fixed key the session record is persisted under.
const StorageKey = "loggedBlogappUser"

// AuthAPI is the slice of the API client the session manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	SetToken(token string)
}

// Manager holds the current session and keeps the persisted copy and the
// API client's credential in sync with it.
type Manager struct {
	store   storage.Store
	api     AuthAPI
	current *models.Session
	logger  *observability.ClientLogger
}

// NewManager creates a Manager persisting through store and installing
// tokens on api.
func NewManager(store storage.Store, api AuthAPI) *Manager {
	return &Manager{
		store:  store,
		api:    api,
		logger: observability.NewClientLogger("session"),
	}
}

// Restore reads the persisted session once at startup. Absent or malformed
// state yields nil: no session is a normal state, not an error.
func (m *Manager) Restore(ctx context.Context) *models.Session {
	data, err := m.store.Get(ctx, StorageKey)
	if err != nil || data == nil {
		return nil
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil
	}
	if session.Username == "" || session.Token == "" {
		return nil
	}

	m.current = &session
	m.api.SetToken(session.Token)
	m.logger.LogOperation("restore", map[string]interface{}{"username": session.Username})
	return &session
}

// Login exchanges credentials at the auth service. On success the session
// is persisted and its token installed; on failure nothing changes.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.Session, error) {
	session, err := m.api.Login(ctx, username, password)
	if err != nil {
		m.logger.LogError("login", err)
		return nil, err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := m.store.Set(ctx, StorageKey, data); err != nil {
		// The session is still valid for this process; only restart
		// restoration is affected.
		m.logger.LogError("persist", err)
	}

	m.current = session
	m.api.SetToken(session.Token)
	m.logger.LogOperation("login", map[string]interface{}{"username": session.Username})
	return session, nil
}

// Logout clears the persisted session and returns to anonymous mode. It is
// purely local and always succeeds.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Remove(ctx, StorageKey); err != nil {
		m.logger.LogError("logout", err)
	}
	m.current = nil
	m.api.SetToken("")
	m.logger.LogOperation("logout", nil)
}

// Current returns the active session, or nil in anonymous mode.
func (m *Manager) Current() *models.Session {
	return m.current
}
