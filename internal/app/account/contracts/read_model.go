package contracts

import (
	"context"
	"time"
)

// UserDTO is a data transfer object for account queries.
// The password hash never leaves the write path.
type UserDTO struct {
	UserID        string
	Name          string
	Email         string
	Address       string
	ContactNumber string
	Role          string
	CreatedAt     time.Time
}

// ReadModel defines the interface for account queries.
type ReadModel interface {
	// GetProfile retrieves a user's profile by ID
	GetProfile(ctx context.Context, userID string) (*UserDTO, error)

	// ListUsers retrieves all accounts, newest first
	ListUsers(ctx context.Context, limit int) ([]*UserDTO, error)
}
