package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/grocery-service/internal/app/account/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// InsertMut creates a mutation for inserting a new user.
	InsertMut(user *domain.User) *spanner.Mutation

	// UpdateMut creates a mutation for updating a user (only dirty fields).
	// Returns nil when nothing changed.
	UpdateMut(user *domain.User) *spanner.Mutation

	// GetByID retrieves a user by ID, reconstructing the domain aggregate.
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns domain.ErrUserNotFound if no account uses the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// EmailTakenByOther reports whether the email belongs to an account
	// other than userID. Pass an empty userID for registration checks.
	EmailTakenByOther(ctx context.Context, email, userID string) (bool, error)
}
