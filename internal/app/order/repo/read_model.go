package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/grocery-service/internal/app/order/contracts"
	"github.com/light-bringer/grocery-service/internal/app/order/domain"
	"github.com/light-bringer/grocery-service/internal/models/m_order"
	"github.com/light-bringer/grocery-service/internal/models/m_order_item"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
	"github.com/light-bringer/grocery-service/internal/pkg/query"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ReadModel implements order queries for Spanner.
type ReadModel struct {
	client *spanner.Client
}

// NewReadModel creates a new order ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModel{client: client}
}

// ListByUser retrieves a user's orders, newest first, with items nested
// under each order. Items for all orders on the page are fetched in one
// batch query.
func (rm *ReadModel) ListByUser(ctx context.Context, userID string, limit int) ([]*contracts.OrderDTO, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	stmt := query.From(m_order.TableName).
		Select(m_order.Columns...).
		Where(query.Eq(m_order.UserID, userID)).
		OrderBy(m_order.PlacedAt, query.Desc).
		Limit(int64(limit)).
		Build()

	orders, err := rm.queryOrders(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []*contracts.OrderDTO{}, nil
	}

	if err := rm.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetByID retrieves a single order with its items.
func (rm *ReadModel) GetByID(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	stmt := query.From(m_order.TableName).
		Select(m_order.Columns...).
		Where(query.Eq(m_order.OrderID, orderID)).
		Build()

	orders, err := rm.queryOrders(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}

	if err := rm.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders[0], nil
}

// queryOrders runs an order header statement and converts rows to DTOs.
func (rm *ReadModel) queryOrders(ctx context.Context, stmt spanner.Statement) ([]*contracts.OrderDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var orders []*contracts.OrderDTO

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}

		total, err := money.New(data.TotalNumerator, data.TotalDenominator)
		if err != nil {
			return nil, fmt.Errorf("invalid total for order %s: %w", data.OrderID, err)
		}

		orders = append(orders, &contracts.OrderDTO{
			OrderID:  data.OrderID,
			UserID:   data.UserID,
			Total:    total.Float64(),
			TotalStr: total.String(),
			Status:   data.Status,
			PlacedAt: data.PlacedAt,
			Items:    []*contracts.OrderItemDTO{},
		})
	}

	return orders, nil
}

// attachItems batch-fetches items for the given orders and nests them
// under their parent DTOs.
func (rm *ReadModel) attachItems(ctx context.Context, orders []*contracts.OrderDTO) error {
	orderIDs := make([]string, 0, len(orders))
	byID := make(map[string]*contracts.OrderDTO, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.OrderID)
		byID[o.OrderID] = o
	}

	stmt := query.From(m_order_item.TableName).
		Select(m_order_item.Columns...).
		Where(query.In(m_order_item.OrderID, orderIDs)).
		OrderBy(m_order_item.OrderItemID, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to iterate order items: %w", err)
		}

		var data m_order_item.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse order item: %w", err)
		}

		unitPrice, err := money.New(data.UnitPriceNumerator, data.UnitPriceDenominator)
		if err != nil {
			return fmt.Errorf("invalid price for order item %s: %w", data.OrderItemID, err)
		}

		parent, ok := byID[data.OrderID]
		if !ok {
			continue
		}

		parent.Items = append(parent.Items, &contracts.OrderItemDTO{
			OrderItemID: data.OrderItemID,
			ProductID:   data.ProductID,
			ProductName: data.ProductName,
			Quantity:    data.Quantity,
			UnitPrice:   unitPrice.Float64(),
			Price:       unitPrice.String(),
		})
	}

	return nil
}
