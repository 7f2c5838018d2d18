package delete_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
	"github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
	"github.com/light-bringer/grocery-service/internal/pkg/outbox"
)

// Request contains the data needed to delete a product.
type Request struct {
	Principal auth.Principal
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new delete product interactor.
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

// Execute removes a product from the catalog. Order lines keep their own
// snapshot of the product name and price, so existing orders are unaffected.
// Only administrators can delete catalog products.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Authorize
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return err
	}

	// 2. Validate request
	if req.ProductID == "" {
		return fmt.Errorf("product ID is required")
	}

	// 3. Load aggregate (verifies existence, captures name for the event)
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	// 4. Create commit plan
	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.ProductID))

	// 5. Add outbox event
	event := &domain.ProductDeletedEvent{
		ProductID: product.ID(),
		Name:      product.Name(),
		DeletedAt: i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outboxRepo.Enrich(event, string(payload))
	plan.Add(i.outboxRepo.InsertMut(outboxEvent))

	// 6. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
