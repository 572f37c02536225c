package engine

import (
	"sort"
	"sync"

	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

// Manager owns the live sessions hosted by the server. Sessions themselves
// serialize their own operations; the manager only guards the lookup map.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
}

// NewManager creates a session manager applying opts to new sessions
func NewManager(opts Options) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create starts a new session
func (m *Manager) Create(name string) *Session {
	session := NewSession(name, m.opts)
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session
}

// Get returns a live session by ID
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, apperrors.NotFound("session", id)
	}
	return session, nil
}

// Delete discards a live session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return apperrors.NotFound("session", id)
	}
	delete(m.sessions, id)
	return nil
}

// List returns the live sessions ordered by creation time
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		out = append(out, session)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
