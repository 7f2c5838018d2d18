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
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/query"
)

// UserRepo implements UserRepository for Spanner.
type UserRepo struct {
	client *spanner.Client
	model  *m_user.Model
	clock  clock.Clock
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *spanner.Client, clk clock.Clock) contracts.UserRepository {
	return &UserRepo{
		client: client,
		model:  m_user.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new user. Email uniqueness
// is backed by a unique index; a duplicate surfaces as AlreadyExists at
// commit and callers map it to domain.ErrEmailTaken.
func (r *UserRepo) InsertMut(user *domain.User) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(user))
}

// UpdateMut creates a mutation updating only the dirty fields.
func (r *UserRepo) UpdateMut(user *domain.User) *spanner.Mutation {
	changes := user.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_user.Name] = user.Name()
	}
	if changes.Dirty(domain.FieldEmail) {
		updates[m_user.Email] = user.Email()
	}
	if changes.Dirty(domain.FieldPasswordHash) {
		updates[m_user.PasswordHash] = user.PasswordHash()
	}
	if changes.Dirty(domain.FieldAddress) {
		updates[m_user.Address] = nullString(user.Address())
	}
	if changes.Dirty(domain.FieldContactNumber) {
		updates[m_user.ContactNumber] = nullString(user.ContactNumber())
	}

	updates[m_user.UpdatedAt] = user.UpdatedAt()

	return r.model.UpdateMut(user.ID(), updates)
}

// GetByID retrieves a user by ID, reconstructing the domain aggregate.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	row, err := r.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, m_user.Columns)
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

	return r.dataToDomain(&data), nil
}

// GetByEmail retrieves a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.Columns...).
		Where(query.Eq(m_user.Email, email)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// EmailTakenByOther reports whether the email belongs to another account.
func (r *UserRepo) EmailTakenByOther(ctx context.Context, email, userID string) (bool, error) {
	b := query.From(m_user.TableName).
		Select(m_user.UserID).
		Where(query.Eq(m_user.Email, email))
	if userID != "" {
		b = b.Where(query.Ne(m_user.UserID, userID))
	}
	stmt := b.Limit(1).Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return true, nil
}

// domainToData converts a domain User to database Data.
func (r *UserRepo) domainToData(user *domain.User) *m_user.Data {
	return &m_user.Data{
		UserID:        user.ID(),
		Name:          user.Name(),
		Email:         user.Email(),
		PasswordHash:  user.PasswordHash(),
		Address:       nullString(user.Address()),
		ContactNumber: nullString(user.ContactNumber()),
		Role:          string(user.Role()),
		CreatedAt:     user.CreatedAt(),
		UpdatedAt:     user.UpdatedAt(),
	}
}

// dataToDomain converts database Data to a domain User.
func (r *UserRepo) dataToDomain(data *m_user.Data) *domain.User {
	return domain.ReconstructUser(
		data.UserID,
		data.Name,
		data.Email,
		data.PasswordHash,
		data.Address.StringVal,
		data.ContactNumber.StringVal,
		auth.Role(data.Role),
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	)
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
