package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUser(t *testing.T) (*User, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(testTime)
	user, err := NewUser("user-1", "John Doe", "customer@example.com", "$2a$12$hash", auth.RoleCustomer, testTime, clk)
	require.NoError(t, err)
	return user, clk
}

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, _ := newTestUser(t)

		assert.Equal(t, "user-1", user.ID())
		assert.Equal(t, "John Doe", user.Name())
		assert.Equal(t, "customer@example.com", user.Email())
		assert.Equal(t, auth.RoleCustomer, user.Role())
	})

	t.Run("normalizes email", func(t *testing.T) {
		clk := clock.NewMockClock(testTime)
		user, err := NewUser("user-1", "John Doe", "  Customer@Example.COM ", "$2a$12$hash", auth.RoleCustomer, testTime, clk)

		require.NoError(t, err)
		assert.Equal(t, "customer@example.com", user.Email())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		clk := clock.NewMockClock(testTime)
		_, err := NewUser("user-1", "", "customer@example.com", "$2a$12$hash", auth.RoleCustomer, testTime, clk)

		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		clk := clock.NewMockClock(testTime)

		for _, email := range []string{"", "no-at-sign", "@example.com", "user@"} {
			_, err := NewUser("user-1", "John Doe", email, "$2a$12$hash", auth.RoleCustomer, testTime, clk)
			assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
		}
	})

	t.Run("records registered event", func(t *testing.T) {
		user, _ := newTestUser(t)

		events := user.DomainEvents()
		require.Len(t, events, 1)

		registered, ok := events[0].(*UserRegisteredEvent)
		require.True(t, ok)
		assert.Equal(t, "user-1", registered.UserID)
		assert.Equal(t, "customer@example.com", registered.Email)
	})
}

func TestUser_SetName(t *testing.T) {
	user, clk := newTestUser(t)
	user.ClearEvents()
	clk.Advance(time.Hour)

	require.NoError(t, user.SetName("Jane Doe"))

	assert.Equal(t, "Jane Doe", user.Name())
	assert.True(t, user.Changes().Dirty(FieldName))
	assert.Equal(t, testTime.Add(time.Hour), user.UpdatedAt())
}

func TestUser_SetEmail(t *testing.T) {
	t.Run("same email is a no-op", func(t *testing.T) {
		user, _ := newTestUser(t)
		user.ClearEvents()

		require.NoError(t, user.SetEmail("customer@example.com"))

		assert.False(t, user.Changes().Dirty(FieldEmail))
		assert.Empty(t, user.DomainEvents())
	})

	t.Run("new email marks dirty", func(t *testing.T) {
		user, _ := newTestUser(t)
		user.ClearEvents()

		require.NoError(t, user.SetEmail("new@example.com"))

		assert.Equal(t, "new@example.com", user.Email())
		assert.True(t, user.Changes().Dirty(FieldEmail))
	})
}

func TestUser_ProfileUpdatedEventRecordedOnce(t *testing.T) {
	user, _ := newTestUser(t)
	user.ClearEvents()

	require.NoError(t, user.SetName("Jane Doe"))
	user.SetAddress("42 Grocery Lane")
	user.SetContactNumber("555-0100")

	events := user.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "user.profile_updated", events[0].EventType())
}

func TestUser_SetPasswordHash(t *testing.T) {
	user, _ := newTestUser(t)

	require.NoError(t, user.SetPasswordHash("$2a$12$newhash"))
	assert.True(t, user.Changes().Dirty(FieldPasswordHash))

	assert.ErrorIs(t, user.SetPasswordHash(""), ErrEmptyPassword)
}
