package domain

import "errors"

// Domain errors for the order context.
var (
	// ErrOrderNotFound indicates the requested order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmptyOrder indicates an order was placed with no items
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidQuantity indicates an item quantity is zero or negative
	ErrInvalidQuantity = errors.New("item quantity must be positive")

	// ErrInsufficientStock indicates a product doesn't have enough stock
	// to satisfy the requested quantity
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrMoneyOverflow indicates a money value exceeds storage capacity
	ErrMoneyOverflow = errors.New("money value exceeds storage capacity")
)
