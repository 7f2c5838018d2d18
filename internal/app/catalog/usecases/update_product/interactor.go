package update_product

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

// Request contains the data needed to update a product. Nil pointers mean
// "leave unchanged", so callers can send partial updates.
type Request struct {
	Principal     auth.Principal
	ProductID     string
	Name          *string
	Description   *string
	Category      *string
	UnitPrice     *money.Money
	Stock         *int64
	ChangedReason string // Optional explanation for price changes
}

// Interactor handles the update product use case.
type Interactor struct {
	repo             contracts.ProductRepository
	outboxRepo       outbox.Repository
	priceHistoryRepo contracts.PriceHistoryRepository
	committer        *committer.Committer
	clock            clock.Clock
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo outbox.Repository,
	priceHistoryRepo contracts.PriceHistoryRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:             repo,
		outboxRepo:       outboxRepo,
		priceHistoryRepo: priceHistoryRepo,
		committer:        committer,
		clock:            clock,
	}
}

// Execute updates a product following the Golden Mutation Pattern.
// Only administrators can modify catalog products.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Authorize
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return err
	}

	// 2. Validate request
	if err := i.validate(req); err != nil {
		return err
	}

	// 3. Load aggregate
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	// Clear events on function exit to prevent duplicates on retry
	defer product.ClearEvents()

	// 4. Apply domain mutations
	oldPrice := product.UnitPrice() // Capture old price before change

	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if err := product.SetDescription(*req.Description); err != nil {
			return err
		}
	}
	if req.Category != nil {
		if err := product.SetCategory(*req.Category); err != nil {
			return err
		}
	}
	if req.UnitPrice != nil {
		if err := product.SetUnitPrice(req.UnitPrice); err != nil {
			return err
		}
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return err
		}
	}

	// 5. Create commit plan
	plan := committer.NewPlan()

	// 6. Add repository mutation (only if changes exist)
	updateMut, err := i.repo.UpdateMut(product)
	if err != nil {
		return err
	}
	plan.Add(updateMut)

	// 7. Record price history when the unit price actually changed
	if product.Changes().Dirty(domain.FieldUnitPrice) {
		historyID := uuid.New().String()
		historyMut, err := i.priceHistoryRepo.InsertMut(
			historyID,
			req.ProductID,
			oldPrice,
			req.UnitPrice,
			req.Principal.UserID,
			req.ChangedReason,
			i.clock.Now(),
		)
		if err != nil {
			return err
		}
		plan.Add(historyMut)
	}

	// 8. Add outbox events
	for _, event := range product.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.Enrich(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 9. Apply plan
	if plan.IsEmpty() {
		return nil // No changes
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.ProductID == "" {
		return fmt.Errorf("product ID is required")
	}
	if req.Name != nil && *req.Name == "" {
		return domain.ErrEmptyName
	}
	if req.UnitPrice != nil && (req.UnitPrice.IsNegative() || req.UnitPrice.IsZero()) {
		return domain.ErrInvalidPrice
	}
	if req.Stock != nil && *req.Stock < 0 {
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
