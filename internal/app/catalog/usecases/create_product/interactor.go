package create_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
	"github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
	"github.com/light-bringer/grocery-service/internal/pkg/outbox"
)

// Request contains the data needed to create a product.
type Request struct {
	Principal   auth.Principal
	Name        string
	Description string
	Category    string
	UnitPrice   *money.Money
	Stock       int64
}

// Interactor handles the create product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
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

// Execute creates a new product following the Golden Mutation Pattern.
// Only administrators can create catalog products.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	// 1. Authorize
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return "", err
	}

	// 2. Validate request
	if err := i.validate(req); err != nil {
		return "", err
	}

	// 3. Create domain aggregate (new product)
	productID := uuid.New().String()
	now := i.clock.Now()

	product, err := domain.NewProduct(
		productID,
		req.Name,
		req.Description,
		req.Category,
		req.UnitPrice,
		req.Stock,
		now,
		i.clock,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	// 4. Create commit plan
	plan := committer.NewPlan()

	// 5. Add repository mutation
	insertMut, err := i.repo.InsertMut(product)
	if err != nil {
		return "", err
	}
	plan.Add(insertMut)

	// 6. Add outbox events
	for _, event := range product.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.Enrich(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 7. Apply plan (usecase applies, not handler)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.Name == "" {
		return domain.ErrEmptyName
	}
	if req.UnitPrice == nil || req.UnitPrice.IsNegative() || req.UnitPrice.IsZero() {
		return domain.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return domain.ErrInvalidStock
	}
	return nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
