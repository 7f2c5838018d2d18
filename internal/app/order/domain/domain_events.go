package domain

import "time"

// DomainEvent is the base interface for all order domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OrderPlacedEvent is emitted when an order is placed successfully.
type OrderPlacedEvent struct {
	OrderID   string
	UserID    string
	Total     string
	ItemCount int
	PlacedAt  time.Time
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderID
}
