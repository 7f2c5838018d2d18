//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/app/account/domain"
	"github.com/light-bringer/grocery-service/internal/app/account/repo"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/tests/testutil"
)

func newDomainUser(t *testing.T, id, name, email string) *domain.User {
	t.Helper()

	now := time.Now()
	user, err := domain.NewUser(id, name, email, "not-a-real-hash", auth.RoleCustomer, now, clock.NewMockClock(now))
	require.NoError(t, err)
	return user
}

func TestUserRepository_InsertAndGetByEmail(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client, clock.NewRealClock())

	user := newDomainUser(t, "user-1", "Jane Smith", "Jane@Example.com")
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(user)})
	require.NoError(t, err)

	// Lookup is against the normalized email
	retrieved, err := repository.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", retrieved.ID())
	assert.Equal(t, "Jane Smith", retrieved.Name())
	assert.Equal(t, "jane@example.com", retrieved.Email())
	assert.Equal(t, auth.RoleCustomer, retrieved.Role())

	_, err = repository.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_UpdateMut_DirtyFieldsOnly(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client, clock.NewRealClock())

	user := newDomainUser(t, "user-2", "John Doe", "john@example.com")
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(user)})
	require.NoError(t, err)

	retrieved, err := repository.GetByID(ctx, "user-2")
	require.NoError(t, err)

	// No changes means no mutation
	assert.Nil(t, repository.UpdateMut(retrieved))

	require.NoError(t, retrieved.SetName("Johnathan Doe"))
	retrieved.SetAddress("42 Market Street")

	updateMut := repository.UpdateMut(retrieved)
	require.NotNil(t, updateMut)
	_, err = client.Apply(ctx, []*spanner.Mutation{updateMut})
	require.NoError(t, err)

	final, err := repository.GetByID(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Johnathan Doe", final.Name())
	assert.Equal(t, "42 Market Street", final.Address())
	assert.Equal(t, "john@example.com", final.Email()) // Unchanged
}

func TestUserRepository_EmailTakenByOther(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client, clock.NewRealClock())

	user := newDomainUser(t, "user-3", "Jane Smith", "jane@example.com")
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(user)})
	require.NoError(t, err)

	// Registration path: no user ID to exclude
	taken, err := repository.EmailTakenByOther(ctx, "jane@example.com", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repository.EmailTakenByOther(ctx, "free@example.com", "")
	require.NoError(t, err)
	assert.False(t, taken)

	// Profile update path: the owner's own row does not count
	taken, err = repository.EmailTakenByOther(ctx, "jane@example.com", "user-3")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repository.EmailTakenByOther(ctx, "jane@example.com", "someone-else")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUserRepository_UniqueEmailIndex(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client, clock.NewRealClock())

	first := newDomainUser(t, "user-4", "Jane Smith", "dup@example.com")
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(first)})
	require.NoError(t, err)

	second := newDomainUser(t, "user-5", "Impostor", "dup@example.com")
	_, err = client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(second)})
	require.Error(t, err, "unique index on email should reject the second insert")
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	userRepo := repo.NewUserRepo(client, clock.NewRealClock())
	sessionRepo := repo.NewSessionRepo(client)

	user := newDomainUser(t, "user-6", "John Doe", "john@example.com")
	_, err := client.Apply(ctx, []*spanner.Mutation{userRepo.InsertMut(user)})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := &contracts.Session{
		Token:     "token-abc",
		UserID:    "user-6",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
	_, err = client.Apply(ctx, []*spanner.Mutation{sessionRepo.InsertMut(session)})
	require.NoError(t, err)

	retrieved, err := sessionRepo.Get(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-6", retrieved.UserID)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Millisecond)

	_, err = client.Apply(ctx, []*spanner.Mutation{sessionRepo.DeleteMut("token-abc")})
	require.NoError(t, err)

	_, err = sessionRepo.Get(ctx, "token-abc")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
