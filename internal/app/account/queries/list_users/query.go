package list_users

import (
	"context"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
)

// Request contains the caller identity and pagination.
type Request struct {
	Principal auth.Principal
	Limit     int
}

// Query handles the list users query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list users query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves all accounts. Administrators only.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.UserDTO, error) {
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}

	return q.readModel.ListUsers(ctx, req.Limit)
}
