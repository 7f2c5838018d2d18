package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// ProductSnapshot is the state of a product as read inside the order
// transaction. Name and UnitPrice are frozen onto the order lines.
type ProductSnapshot struct {
	ProductID string
	Name      string
	UnitPrice *money.Money
	Stock     int64
}

// StockReader reads and decrements product stock inside a read-write
// transaction. Reads go through the transaction so concurrent placements
// against the same product conflict and one of them retries against the
// decremented stock.
type StockReader interface {
	// ReadForUpdate reads a product row through the transaction.
	// Returns catalog ErrProductNotFound (wrapped with the product ID)
	// if the row doesn't exist.
	ReadForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*ProductSnapshot, error)

	// DecrementMut creates a mutation setting the product's stock to
	// newStock, computed from the in-transaction read.
	DecrementMut(productID string, newStock int64, now time.Time) *spanner.Mutation
}
