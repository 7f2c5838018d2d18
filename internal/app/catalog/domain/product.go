package domain

import (
	"time"

	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldUnitPrice   = "unit_price"
	FieldStock       = "stock_quantity"
)

// Product is the aggregate root for catalog management. It owns the
// invariants on price and stock; the stock decrement performed during order
// placement deliberately bypasses this aggregate and runs as a guarded
// write inside the order transaction.
type Product struct {
	id          string
	name        string
	description string
	category    string
	unitPrice   *money.Money
	stock       int64
	createdAt   time.Time
	updatedAt   time.Time

	clock clock.Clock

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id, name, description, category string, unitPrice *money.Money, stock int64, now time.Time, clk clock.Clock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if unitPrice == nil || unitPrice.IsNegative() || unitPrice.IsZero() {
		return nil, ErrInvalidPrice
	}

	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		unitPrice:   unitPrice.Copy(),
		stock:       stock,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldCategory)
	p.changes.MarkDirty(FieldUnitPrice)
	p.changes.MarkDirty(FieldStock)

	p.recordEvent(&ProductCreatedEvent{
		ProductID: p.id,
		Name:      p.name,
		Category:  p.category,
		UnitPrice: p.unitPrice.Copy(),
		Stock:     p.stock,
		CreatedAt: p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(
	id, name, description, category string,
	unitPrice *money.Money,
	stock int64,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		unitPrice:   unitPrice,
		stock:       stock,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) Category() string            { return p.category }
func (p *Product) UnitPrice() *money.Money     { return p.unitPrice.Copy() }
func (p *Product) Stock() int64                { return p.stock }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// InStock returns true if at least quantity units are available.
func (p *Product) InStock(quantity int64) bool {
	return quantity > 0 && p.stock >= quantity
}

// SetName updates the product name.
func (p *Product) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	p.name = name
	p.changes.MarkDirty(FieldName)

	p.recordEvent(&ProductUpdatedEvent{
		ProductID:   p.id,
		Name:        p.name,
		Description: p.description,
		Category:    p.category,
		UpdatedAt:   p.clock.Now(),
	})

	return nil
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) error {
	p.description = description
	p.changes.MarkDirty(FieldDescription)

	p.recordEvent(&ProductUpdatedEvent{
		ProductID:   p.id,
		Name:        p.name,
		Description: p.description,
		Category:    p.category,
		UpdatedAt:   p.clock.Now(),
	})

	return nil
}

// SetCategory updates the product category.
func (p *Product) SetCategory(category string) error {
	p.category = category
	p.changes.MarkDirty(FieldCategory)

	p.recordEvent(&ProductUpdatedEvent{
		ProductID:   p.id,
		Name:        p.name,
		Description: p.description,
		Category:    p.category,
		UpdatedAt:   p.clock.Now(),
	})

	return nil
}

// SetUnitPrice updates the product's unit price. Already-placed orders are
// unaffected: order items freeze the price read at placement time.
func (p *Product) SetUnitPrice(unitPrice *money.Money) error {
	if unitPrice == nil || unitPrice.IsNegative() || unitPrice.IsZero() {
		return ErrInvalidPrice
	}

	oldPrice := p.unitPrice
	p.unitPrice = unitPrice.Copy()
	p.changes.MarkDirty(FieldUnitPrice)

	p.recordEvent(&ProductPriceChangedEvent{
		ProductID: p.id,
		OldPrice:  oldPrice,
		NewPrice:  p.unitPrice.Copy(),
		ChangedAt: p.clock.Now(),
	})

	return nil
}

// SetStock sets the absolute stock level (admin restock/correction).
func (p *Product) SetStock(stock int64) error {
	if stock < 0 {
		return ErrInvalidStock
	}

	oldStock := p.stock
	p.stock = stock
	p.changes.MarkDirty(FieldStock)

	p.recordEvent(&StockAdjustedEvent{
		ProductID:  p.id,
		OldStock:   oldStock,
		NewStock:   p.stock,
		AdjustedAt: p.clock.Now(),
	})

	return nil
}

// recordEvent adds a domain event to the list of events.
func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
