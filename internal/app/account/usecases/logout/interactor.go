package logout

import (
	"context"
	"fmt"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
)

// Request contains the session token to revoke.
type Request struct {
	Token string
}

// Interactor handles the logout use case.
type Interactor struct {
	sessionRepo contracts.SessionRepository
	committer   *committer.Committer
}

// NewInteractor creates a new logout interactor.
func NewInteractor(sessionRepo contracts.SessionRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		sessionRepo: sessionRepo,
		committer:   committer,
	}
}

// Execute revokes a session. Deleting an unknown token is a no-op, so
// logout is idempotent.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.Token == "" {
		return nil
	}

	plan := committer.NewPlan()
	plan.Add(i.sessionRepo.DeleteMut(req.Token))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
