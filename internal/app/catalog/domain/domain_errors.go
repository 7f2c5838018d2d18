package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price must be positive")
	ErrInvalidStock    = errors.New("product stock cannot be negative")
	ErrMoneyOverflow   = errors.New("money value exceeds storage bounds")
)
