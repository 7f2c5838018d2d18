package m_user

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the users table.
type Data struct {
	UserID        string             `spanner:"user_id"`
	Name          string             `spanner:"name"`
	Email         string             `spanner:"email"`
	PasswordHash  string             `spanner:"password_hash"`
	Address       spanner.NullString `spanner:"address"`
	ContactNumber spanner.NullString `spanner:"contact_number"`
	Role          string             `spanner:"role"`
	CreatedAt     time.Time          `spanner:"created_at"`
	UpdatedAt     time.Time          `spanner:"updated_at"`
}
