package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the fixed session lifetime. The TTL is anchored to issuance
// and does not slide on activity.
const DefaultTTL = 24 * time.Hour

// CookieName is the cookie the session identifier is bound to.
const CookieName = "session_id"

type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the session's fixed TTL has elapsed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store maps session identifiers to authentication state. Get returns
// (nil, nil) for unknown or expired identifiers. Destroy is idempotent.
type Store interface {
	Create(ctx context.Context, ttl time.Duration) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
}

func newSession(ttl time.Duration) *Session {
	return &Session{
		ID:            uuid.New().String(),
		Authenticated: true,
		ExpiresAt:     time.Now().Add(ttl),
	}
}
