package register_user

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/app/account/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
	"github.com/light-bringer/grocery-service/internal/pkg/outbox"
)

// bcryptCost balances hashing time against login latency.
const bcryptCost = 12

// Request contains the data needed to register a user.
type Request struct {
	Name     string
	Email    string
	Password string
}

// Interactor handles the register user use case.
type Interactor struct {
	repo       contracts.UserRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new register user interactor.
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

// Execute registers a new customer account.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	// 1. Validate request
	if req.Password == "" {
		return "", domain.ErrEmptyPassword
	}

	// 2. Pre-check email availability; the unique index is the real guard
	taken, err := i.repo.EmailTakenByOther(ctx, req.Email, "")
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: %s", domain.ErrEmailTaken, req.Email)
	}

	// 3. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	// 4. Create domain aggregate
	userID := uuid.New().String()
	now := i.clock.Now()

	user, err := domain.NewUser(userID, req.Name, req.Email, string(hash), auth.RoleCustomer, now, i.clock)
	if err != nil {
		return "", err
	}

	// 5. Create and apply commit plan
	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(user))

	for _, event := range user.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.Enrich(event, string(payload))
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		// A racing registration can slip past the pre-check; the unique
		// index on email reports it at commit.
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return "", fmt.Errorf("%w: %s", domain.ErrEmailTaken, req.Email)
		}
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user.ID(), nil
}
