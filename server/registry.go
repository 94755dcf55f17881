// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/spherelab/internal/metrics"
	"github.com/katalvlaran/spherelab/session"
)

// Registry is the process-local set of live sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*session.Session)}
}

// Add registers s under its ID.
func (r *Registry) Add(s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
	metrics.Sessions.Set(float64(len(r.sessions)))
}

// Get returns the session with the given id or ErrSessionNotFound.
func (r *Registry) Get(id string) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("id %q: %w", id, ErrSessionNotFound)
	}

	return s, nil
}

// Remove drops the session with the given id or returns ErrSessionNotFound.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("id %q: %w", id, ErrSessionNotFound)
	}
	delete(r.sessions, id)
	metrics.Sessions.Set(float64(len(r.sessions)))

	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
