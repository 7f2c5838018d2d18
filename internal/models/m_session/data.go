package m_session

import "time"

// Data represents the database model for the sessions table.
type Data struct {
	SessionToken string    `spanner:"session_token"`
	UserID       string    `spanner:"user_id"`
	CreatedAt    time.Time `spanner:"created_at"`
	ExpiresAt    time.Time `spanner:"expires_at"`
}
