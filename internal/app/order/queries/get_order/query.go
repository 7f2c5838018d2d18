package get_order

import (
	"context"
	"fmt"

	"github.com/light-bringer/grocery-service/internal/app/order/contracts"
	"github.com/light-bringer/grocery-service/internal/app/order/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
)

// Request contains the caller identity and the order to fetch.
type Request struct {
	Principal auth.Principal
	OrderID   string
}

// Query handles the get order query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get order query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a single order. Customers can only fetch their own
// orders; someone else's order looks exactly like a missing one.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.OrderDTO, error) {
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	order, err := q.readModel.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != req.Principal.UserID && !req.Principal.IsAdmin() {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, req.OrderID)
	}

	return order, nil
}
