package e2e

import (
	"github.com/light-bringer/grocery-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// adminPrincipal returns a principal with admin privileges for tests that
// exercise catalog writes directly.
func adminPrincipal(userID string) auth.Principal {
	return auth.Principal{UserID: userID, Role: auth.RoleAdmin}
}

// customerPrincipal returns a customer principal.
func customerPrincipal(userID string) auth.Principal {
	return auth.Principal{UserID: userID, Role: auth.RoleCustomer}
}

// ProductBuilder helps create products for tests with a fluent interface
type ProductBuilder struct {
	principal   auth.Principal
	name        string
	description string
	category    string
	price       string
	stock       int64
}

// NewProductBuilder creates a new builder with default values
func NewProductBuilder(principal auth.Principal) *ProductBuilder {
	return &ProductBuilder{
		principal:   principal,
		name:        "Test Product",
		description: "Default Description",
		category:    "produce",
		price:       "1.99",
		stock:       100,
	}
}

// WithName sets the product name
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

// WithPrice sets the unit price as a decimal string
func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.price = price
	return b
}

// WithStock sets the stock level
func (b *ProductBuilder) WithStock(stock int64) *ProductBuilder {
	b.stock = stock
	return b
}

// Build creates the create_product.Request
func (b *ProductBuilder) Build() *create_product.Request {
	price, err := money.Parse(b.price)
	if err != nil {
		panic("test builder: invalid price " + b.price)
	}

	return &create_product.Request{
		Principal:   b.principal,
		Name:        b.name,
		Description: b.description,
		Category:    b.category,
		UnitPrice:   price,
		Stock:       b.stock,
	}
}
