package place_order

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/grocery-service/internal/app/order/contracts"
	"github.com/light-bringer/grocery-service/internal/app/order/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
	"github.com/light-bringer/grocery-service/internal/pkg/outbox"
)

// ItemRequest is one requested order line.
type ItemRequest struct {
	ProductID string
	Quantity  int64
}

// Request contains the data needed to place an order.
type Request struct {
	Principal auth.Principal
	Items     []ItemRequest
}

// Response contains the result of a placed order.
type Response struct {
	OrderID string
	Total   string
}

// Interactor handles the place order use case.
type Interactor struct {
	orderRepo   contracts.OrderRepository
	stockReader contracts.StockReader
	outboxRepo  outbox.Repository
	committer   *committer.Committer
	clock       clock.Clock
}

// NewInteractor creates a new place order interactor.
func NewInteractor(
	orderRepo contracts.OrderRepository,
	stockReader contracts.StockReader,
	outboxRepo outbox.Repository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		orderRepo:   orderRepo,
		stockReader: stockReader,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
	}
}

// Execute places an order atomically. The whole operation runs inside one
// read-write transaction: product rows are read through the transaction,
// stock is validated against those reads, and the order insert plus stock
// decrements are buffered together. Two orders racing for the same stock
// serialize at commit; the loser retries against the decremented stock and
// fails validation instead of overselling. Nothing persists on failure.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Authorize
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	// 2. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}

	// 3. Merge duplicate product lines so each product is read and
	// validated exactly once against its full requested quantity
	lines := i.mergeLines(req.Items)

	// Order ID is stable across transaction retries; nothing commits on
	// an aborted attempt, so reuse is safe.
	orderID := uuid.New().String()

	var resp *Response

	err := i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		now := i.clock.Now()

		items := make([]*domain.OrderItem, 0, len(lines))
		decrements := make([]*spanner.Mutation, 0, len(lines))

		// 4. Read each product through the transaction and validate stock
		for _, line := range lines {
			snapshot, err := i.stockReader.ReadForUpdate(ctx, txn, line.ProductID)
			if err != nil {
				return err
			}

			if snapshot.Stock < line.Quantity {
				return fmt.Errorf("%w for %s", domain.ErrInsufficientStock, snapshot.Name)
			}

			item, err := domain.NewOrderItem(
				uuid.New().String(),
				snapshot.ProductID,
				snapshot.Name,
				line.Quantity,
				snapshot.UnitPrice,
			)
			if err != nil {
				return err
			}
			items = append(items, item)

			decrements = append(decrements, i.stockReader.DecrementMut(
				line.ProductID,
				snapshot.Stock-line.Quantity,
				now,
			))
		}

		// 5. Assemble the aggregate; total is the exact sum of lines
		order, err := domain.NewOrder(orderID, req.Principal.UserID, items, now)
		if err != nil {
			return err
		}

		// 6. Buffer order, items, decrements and outbox events together
		orderMuts, err := i.orderRepo.InsertMuts(order)
		if err != nil {
			return err
		}

		muts := append(orderMuts, decrements...)

		for _, event := range order.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			outboxEvent := i.outboxRepo.Enrich(event, string(payload))
			muts = append(muts, i.outboxRepo.InsertMut(outboxEvent))
		}

		if err := txn.BufferWrite(muts); err != nil {
			return fmt.Errorf("failed to buffer order writes: %w", err)
		}

		resp = &Response{
			OrderID: order.ID(),
			Total:   order.Total().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if len(req.Items) == 0 {
		return domain.ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			return fmt.Errorf("product ID is required")
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: product %s", domain.ErrInvalidQuantity, item.ProductID)
		}
	}
	return nil
}

// mergeLines sums quantities for repeated product IDs, preserving the
// order in which products first appear.
func (i *Interactor) mergeLines(items []ItemRequest) []ItemRequest {
	merged := make([]ItemRequest, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if pos, ok := index[item.ProductID]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}
