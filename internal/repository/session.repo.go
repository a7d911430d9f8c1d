package repository

import (
	"sync"

	"linkora-server/internal/domain"
)

// SessionRepo tracks which user, if any, each live connection has
// authenticated as. A connection holds at most one binding; it is
// created on login and destroyed on disconnect, never demoted.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.User
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*domain.User),
	}
}

// Bind associates a connection with a user, replacing any prior binding.
func (r *SessionRepo) Bind(connID string, user *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[connID] = user
}

// Unbind removes the association. Idempotent.
func (r *SessionRepo) Unbind(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, connID)
}

// Lookup returns the bound user, or false for anonymous connections.
func (r *SessionRepo) Lookup(connID string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.sessions[connID]
	return user, ok
}
