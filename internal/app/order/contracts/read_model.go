package contracts

import (
	"context"
	"time"
)

// OrderItemDTO is a data transfer object for a single order line.
type OrderItemDTO struct {
	OrderItemID string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   float64
	Price       string // exact, two decimal places
}

// OrderDTO is a data transfer object for order queries.
type OrderDTO struct {
	OrderID  string
	UserID   string
	Total    float64
	TotalStr string // exact, two decimal places
	Status   string
	PlacedAt time.Time
	Items    []*OrderItemDTO
}

// ReadModel defines the interface for order queries.
type ReadModel interface {
	// ListByUser retrieves a user's orders, newest first, with items
	// nested under each order.
	ListByUser(ctx context.Context, userID string, limit int) ([]*OrderDTO, error)

	// GetByID retrieves a single order with its items. Returns
	// domain.ErrOrderNotFound if no such order exists.
	GetByID(ctx context.Context, orderID string) (*OrderDTO, error)
}
