package login

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/app/account/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
)

// sessionTTL is how long a login stays valid.
const sessionTTL = 7 * 24 * time.Hour

// Request contains login credentials.
type Request struct {
	Email    string
	Password string
}

// Response contains the session issued for a successful login.
type Response struct {
	Token     string
	UserID    string
	Name      string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Interactor handles the login use case.
type Interactor struct {
	userRepo    contracts.UserRepository
	sessionRepo contracts.SessionRepository
	committer   *committer.Committer
	clock       clock.Clock
}

// NewInteractor creates a new login interactor.
func NewInteractor(
	userRepo contracts.UserRepository,
	sessionRepo contracts.SessionRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		committer:   committer,
		clock:       clock,
	}
}

// Execute verifies credentials and issues a session token. Unknown email
// and wrong password produce the same error so accounts can't be probed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	user, err := i.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrWrongPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}

	now := i.clock.Now()
	session := &contracts.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID(),
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	plan := committer.NewPlan()
	plan.Add(i.sessionRepo.InsertMut(session))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Response{
		Token:     session.Token,
		UserID:    user.ID(),
		Name:      user.Name(),
		Email:     user.Email(),
		Role:      string(user.Role()),
		ExpiresAt: session.ExpiresAt,
	}, nil
}
