// internal/domain/storefront/registry.go
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Registry owns the live sessions and expires idle ones
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     Dependencies
	ttl      time.Duration
}

// NewRegistry creates an empty registry whose sessions share deps
func NewRegistry(deps Dependencies, ttl time.Duration) *Registry {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		deps:     deps,
		ttl:      ttl,
	}
}

// Create starts a new session with a random id
func (r *Registry) Create() *Session {
	s := NewSession(uuid.NewString(), r.deps)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.deps.Logger.WithField("session_id", s.ID()).Debug("Session created")
	return s
}

// Get returns a live session
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Resolve returns the session for id, creating a fresh one when id is
// unknown or expired. The boolean reports whether a session was created.
func (r *Registry) Resolve(id string) (*Session, bool) {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s, false
		}
	}
	return r.Create(), true
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the ttl
func (r *Registry) Sweep() int {
	cutoff := r.deps.Clock().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.deps.Logger.WithFields(logrus.Fields{
					"expired": n,
					"live":    r.Len(),
				}).Info("Expired idle sessions")
			}
		}
	}
}
