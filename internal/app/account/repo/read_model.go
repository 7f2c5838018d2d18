package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/app/account/domain"
	"github.com/light-bringer/grocery-service/internal/models/m_user"
	"github.com/light-bringer/grocery-service/internal/pkg/query"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ReadModel implements account queries for Spanner.
type ReadModel struct {
	client *spanner.Client
}

// NewReadModel creates a new account ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModel{client: client}
}

// GetProfile retrieves a user's profile by ID.
func (rm *ReadModel) GetProfile(ctx context.Context, userID string) (*contracts.UserDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, m_user.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return dataToDTO(&data), nil
}

// ListUsers retrieves all accounts, newest first.
func (rm *ReadModel) ListUsers(ctx context.Context, limit int) ([]*contracts.UserDTO, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	stmt := query.From(m_user.TableName).
		Select(m_user.Columns...).
		OrderBy(m_user.CreatedAt, query.Desc).
		Limit(int64(limit)).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	users := make([]*contracts.UserDTO, 0, limit)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}

		var data m_user.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse user: %w", err)
		}

		users = append(users, dataToDTO(&data))
	}

	return users, nil
}

// dataToDTO converts database Data to a UserDTO.
func dataToDTO(data *m_user.Data) *contracts.UserDTO {
	return &contracts.UserDTO{
		UserID:        data.UserID,
		Name:          data.Name,
		Email:         data.Email,
		Address:       data.Address.StringVal,
		ContactNumber: data.ContactNumber.StringVal,
		Role:          data.Role,
		CreatedAt:     data.CreatedAt,
	}
}
