package update_profile

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/app/account/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
	"github.com/light-bringer/grocery-service/internal/pkg/outbox"
)

const bcryptCost = 12

// Request contains the profile fields to change. Nil pointers mean
// "leave unchanged". Changing the password requires the current one.
type Request struct {
	Principal       auth.Principal
	Name            *string
	Email           *string
	Address         *string
	ContactNumber   *string
	CurrentPassword string
	NewPassword     string
}

// Interactor handles the update profile use case.
type Interactor struct {
	repo       contracts.UserRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update profile interactor.
func NewInteractor(
	repo contracts.UserRepository,
	outboxRepo outbox.Repository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute updates the caller's own profile.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Authorize
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return err
	}

	// 2. Load aggregate
	user, err := i.repo.GetByID(ctx, req.Principal.UserID)
	if err != nil {
		return err
	}

	defer user.ClearEvents()

	// 3. Email change requires a uniqueness check against other accounts
	if req.Email != nil {
		taken, err := i.repo.EmailTakenByOther(ctx, *req.Email, user.ID())
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", domain.ErrEmailTaken, *req.Email)
		}
		if err := user.SetEmail(*req.Email); err != nil {
			return err
		}
	}

	// 4. Password change requires proof of the current password
	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.CurrentPassword)); err != nil {
			return domain.ErrCurrentPasswordInvalid
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if err := user.SetPasswordHash(string(hash)); err != nil {
			return err
		}
	}

	// 5. Remaining profile fields
	if req.Name != nil {
		if err := user.SetName(*req.Name); err != nil {
			return err
		}
	}
	if req.Address != nil {
		user.SetAddress(*req.Address)
	}
	if req.ContactNumber != nil {
		user.SetContactNumber(*req.ContactNumber)
	}

	// 6. Create commit plan
	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(user))

	for _, event := range user.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.Enrich(event, string(payload))
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 7. Apply plan
	if plan.IsEmpty() {
		return nil // No changes
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		// A racing email change can slip past the check; the unique
		// index on email reports it at commit.
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
