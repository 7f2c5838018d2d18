package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/grocery-service/internal/app/order/domain"
)

// OrderRepository defines the interface for order persistence. Orders are
// insert-only; placement buffers the header and every line into one plan.
type OrderRepository interface {
	// InsertMuts creates mutations for the order header and all its items.
	// Returns error if money values exceed int64 bounds.
	InsertMuts(order *domain.Order) ([]*spanner.Mutation, error)
}
