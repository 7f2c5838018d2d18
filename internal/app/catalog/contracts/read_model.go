package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for product queries.
// UnitPrice carries an approximate float for display; the exact rational
// value stays inside the write path.
type ProductDTO struct {
	ProductID   string
	Name        string
	Description string
	Category    string
	UnitPrice   float64
	Price       string // exact, two decimal places
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	// Search is an optional case-insensitive substring match on name.
	Search string
	Limit  int
}

// ListResult contains product list results.
type ListResult struct {
	Products   []*ProductDTO
	TotalCount int64
}

// ReadModel defines the interface for product queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by ID
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves products matching the filter, ordered by
	// name ascending
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)
}
