package get_profile

import (
	"context"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
)

// Request contains the caller identity.
type Request struct {
	Principal auth.Principal
}

// Query handles the get profile query use case. Callers only ever see
// their own profile.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get profile query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the caller's profile.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.UserDTO, error) {
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	return q.readModel.GetProfile(ctx, req.Principal.UserID)
}
