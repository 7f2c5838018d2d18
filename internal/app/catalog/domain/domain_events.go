package domain

import (
	"time"

	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// DomainEvent is the base interface for all catalog domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is created.
type ProductCreatedEvent struct {
	ProductID string
	Name      string
	Category  string
	UnitPrice *money.Money
	Stock     int64
	CreatedAt time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductUpdatedEvent is emitted when product details are updated.
type ProductUpdatedEvent struct {
	ProductID   string
	Name        string
	Description string
	Category    string
	UpdatedAt   time.Time
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductPriceChangedEvent is emitted when a product's unit price changes.
type ProductPriceChangedEvent struct {
	ProductID string
	OldPrice  *money.Money
	NewPrice  *money.Money
	ChangedAt time.Time
}

func (e *ProductPriceChangedEvent) EventType() string {
	return "product.price_changed"
}

func (e *ProductPriceChangedEvent) AggregateID() string {
	return e.ProductID
}

// StockAdjustedEvent is emitted when an admin sets a product's stock level.
// Stock decrements from order placement emit order events instead.
type StockAdjustedEvent struct {
	ProductID  string
	OldStock   int64
	NewStock   int64
	AdjustedAt time.Time
}

func (e *StockAdjustedEvent) EventType() string {
	return "product.stock_adjusted"
}

func (e *StockAdjustedEvent) AggregateID() string {
	return e.ProductID
}

// ProductDeletedEvent is emitted when a product is removed from the catalog.
type ProductDeletedEvent struct {
	ProductID string
	Name      string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) AggregateID() string {
	return e.ProductID
}
