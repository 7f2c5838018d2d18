package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/app/account/domain"
	"github.com/light-bringer/grocery-service/internal/models/m_session"
)

// SessionRepo implements SessionRepository for Spanner.
type SessionRepo struct {
	client *spanner.Client
	model  *m_session.Model
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(client *spanner.Client) contracts.SessionRepository {
	return &SessionRepo{
		client: client,
		model:  m_session.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a session.
func (r *SessionRepo) InsertMut(session *contracts.Session) *spanner.Mutation {
	return r.model.InsertMut(&m_session.Data{
		SessionToken: session.Token,
		UserID:       session.UserID,
		CreatedAt:    session.CreatedAt,
		ExpiresAt:    session.ExpiresAt,
	})
}

// Get retrieves a session by token.
func (r *SessionRepo) Get(ctx context.Context, token string) (*contracts.Session, error) {
	row, err := r.client.Single().ReadRow(ctx, m_session.TableName, spanner.Key{token}, m_session.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var data m_session.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	return &contracts.Session{
		Token:     data.SessionToken,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}, nil
}

// DeleteMut creates a mutation for deleting a session.
func (r *SessionRepo) DeleteMut(token string) *spanner.Mutation {
	return r.model.DeleteMut(token)
}
