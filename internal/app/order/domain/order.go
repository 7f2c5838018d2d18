package domain

import (
	"fmt"
	"time"

	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// Order status constants.
const (
	StatusPlaced = "PLACED"
)

// OrderItem is one line of an order. ProductName and UnitPrice are captured
// at placement time; later catalog edits never change them.
type OrderItem struct {
	orderItemID string
	productID   string
	productName string
	quantity    int64
	unitPrice   *money.Money
}

// NewOrderItem creates an order line with a frozen name and unit price.
func NewOrderItem(orderItemID, productID, productName string, quantity int64, unitPrice *money.Money) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: product %s", ErrInvalidQuantity, productID)
	}
	if unitPrice == nil || unitPrice.IsNegative() {
		return nil, fmt.Errorf("invalid unit price for product %s", productID)
	}

	return &OrderItem{
		orderItemID: orderItemID,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice.Copy(),
	}, nil
}

func (it *OrderItem) OrderItemID() string    { return it.orderItemID }
func (it *OrderItem) ProductID() string      { return it.productID }
func (it *OrderItem) ProductName() string    { return it.productName }
func (it *OrderItem) Quantity() int64        { return it.quantity }
func (it *OrderItem) UnitPrice() *money.Money { return it.unitPrice.Copy() }

// LineTotal returns unit price times quantity, exactly.
func (it *OrderItem) LineTotal() *money.Money {
	return it.unitPrice.MultiplyInt(it.quantity)
}

// Order is the aggregate root for a placed order. Orders are immutable
// once placed; there are no mutation methods.
type Order struct {
	id       string
	userID   string
	items    []*OrderItem
	total    *money.Money
	status   string
	placedAt time.Time

	events []DomainEvent
}

// NewOrder assembles an order from validated items and computes the total
// as the exact sum of line totals.
func NewOrder(id, userID string, items []*OrderItem, placedAt time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	total := money.Zero()
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	order := &Order{
		id:       id,
		userID:   userID,
		items:    items,
		total:    total,
		status:   StatusPlaced,
		placedAt: placedAt,
	}

	order.recordEvent(&OrderPlacedEvent{
		OrderID:   id,
		UserID:    userID,
		Total:     total.String(),
		ItemCount: len(items),
		PlacedAt:  placedAt,
	})

	return order, nil
}

// ReconstructOrder rebuilds an order from persisted state without
// recording events.
func ReconstructOrder(id, userID string, items []*OrderItem, total *money.Money, status string, placedAt time.Time) *Order {
	return &Order{
		id:       id,
		userID:   userID,
		items:    items,
		total:    total,
		status:   status,
		placedAt: placedAt,
	}
}

func (o *Order) ID() string                  { return o.id }
func (o *Order) UserID() string              { return o.userID }
func (o *Order) Items() []*OrderItem         { return o.items }
func (o *Order) Total() *money.Money         { return o.total.Copy() }
func (o *Order) Status() string              { return o.status }
func (o *Order) PlacedAt() time.Time         { return o.placedAt }
func (o *Order) DomainEvents() []DomainEvent { return o.events }

func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}

// ClearEvents removes all recorded events.
func (o *Order) ClearEvents() {
	o.events = nil
}
