package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
)

// Session represents an authenticated session.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionRepository defines the interface for session persistence.
type SessionRepository interface {
	// InsertMut creates a mutation for inserting a session.
	InsertMut(session *Session) *spanner.Mutation

	// Get retrieves a session by token. Returns domain.ErrSessionNotFound
	// for unknown tokens; expiry is the caller's concern.
	Get(ctx context.Context, token string) (*Session, error)

	// DeleteMut creates a mutation for deleting a session.
	DeleteMut(token string) *spanner.Mutation
}
