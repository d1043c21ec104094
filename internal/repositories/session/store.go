// Package session persists the authenticated admin session that outbound
// calls to the rarity service authorize with
package session

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination=mock/mock_store.go -package=sessionmock github.com/KirkDiggler/talent-api/internal/repositories/session Store

const (
	// DefaultName is the session slot used when none is configured
	DefaultName = "default"

	bearerPrefix = "Bearer "

	errSessionNil   = "session cannot be nil"
	errTokenEmpty   = "session token cannot be empty"
	errNoSession    = "no saved session"
)

// User is the identity a session was issued to
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name,omitempty"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Session is a saved access token and the user it belongs to
type Session struct {
	Token   string    `json:"token"`
	User    User      `json:"user"`
	SavedAt time.Time `json:"savedAt"`
}

// BearerToken returns the Authorization header value for the session.
// Tokens already carrying the scheme are returned unchanged.
func (s *Session) BearerToken() string {
	if s == nil || s.Token == "" {
		return ""
	}
	if strings.HasPrefix(s.Token, bearerPrefix) {
		return s.Token
	}
	return bearerPrefix + s.Token
}

// Store loads, saves and clears the current session
type Store interface {
	// Load returns the saved session or a NotFound error
	Load(ctx context.Context) (*Session, error)

	// Save replaces the saved session
	Save(ctx context.Context, session *Session) error

	// Clear removes the saved session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
