package list_products

import (
	"context"

	"github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
)

// Request contains filtering parameters.
type Request struct {
	Search string
	Limit  int
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves products matching the filter, ordered by name.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	filter := &contracts.ListFilter{
		Search: req.Search,
		Limit:  req.Limit,
	}

	return q.readModel.ListProducts(ctx, filter)
}
