package list_orders

import (
	"context"

	"github.com/light-bringer/grocery-service/internal/app/order/contracts"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
)

// Request contains the caller identity and pagination.
type Request struct {
	Principal auth.Principal
	Limit     int
}

// Query handles the list orders query use case. Callers only ever see
// their own orders; the user ID comes from the principal, not the request.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list orders query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the caller's orders, newest first, with nested items.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.OrderDTO, error) {
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	return q.readModel.ListByUser(ctx, req.Principal.UserID, req.Limit)
}
