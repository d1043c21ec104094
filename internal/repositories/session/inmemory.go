package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/pkg/clock"
)

// InMemoryStore implements Store for a single process
type InMemoryStore struct {
	mu      sync.RWMutex
	clock   clock.Clock
	session *Session
}

// NewInMemory creates an empty in-memory store. A nil clock uses the system time.
func NewInMemory(c clock.Clock) *InMemoryStore {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryStore{clock: c}
}

var _ Store = (*InMemoryStore)(nil)

// Load returns a copy of the saved session
func (s *InMemoryStore) Load(_ context.Context) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, errors.NotFound(errNoSession)
	}
	out := *s.session
	out.User.Roles = append([]string(nil), s.session.User.Roles...)
	return &out, nil
}

// Save replaces the saved session
func (s *InMemoryStore) Save(_ context.Context, session *Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.Token == "" {
		return errors.InvalidArgument(errTokenEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *session
	saved.User.Roles = append([]string(nil), session.User.Roles...)
	saved.SavedAt = s.clock.Now()
	s.session = &saved
	session.SavedAt = saved.SavedAt
	return nil
}

// Clear drops the saved session
func (s *InMemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
