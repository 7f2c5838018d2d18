package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/grocery-service/internal/models/m_product"
	"github.com/light-bringer/grocery-service/internal/models/m_user"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// CreateTestProduct creates a product directly in the database and returns
// its ID. Price is a decimal string like "3.49".
func CreateTestProduct(t *testing.T, client *spanner.Client, name, price string, stock int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()
	now := time.Now().UTC()

	m, err := money.Parse(price)
	require.NoError(t, err, "invalid test price")

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:            productID,
		Name:                 name,
		Description:          "Test product description",
		Category:             "produce",
		UnitPriceNumerator:   m.Numerator(),
		UnitPriceDenominator: m.Denominator(),
		StockQuantity:        stock,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	_, err = client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestUser creates a customer account and returns its ID.
// The password is stored bcrypt-hashed so login flows work against it.
func CreateTestUser(t *testing.T, client *spanner.Client, name, email, password string) string {
	t.Helper()
	return createUser(t, client, name, email, password, auth.RoleCustomer)
}

// CreateTestAdmin creates an admin account and returns its ID.
func CreateTestAdmin(t *testing.T, client *spanner.Client, name, email, password string) string {
	t.Helper()
	return createUser(t, client, name, email, password, auth.RoleAdmin)
}

func createUser(t *testing.T, client *spanner.Client, name, email, password string, role auth.Role) string {
	t.Helper()

	ctx := context.Background()
	userID := uuid.New().String()
	now := time.Now().UTC()

	// Cost 4 keeps test setup fast; production registration uses 12
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err, "failed to hash test password")

	model := m_user.NewModel()
	data := &m_user.Data{
		UserID:       userID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test user")

	return userID
}

// GetProductStock reads a product's current stock level.
func GetProductStock(t *testing.T, client *spanner.Client, productID string) int64 {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.StockQuantity,
	})
	require.NoError(t, err, "failed to read product stock")

	var stock int64
	require.NoError(t, row.Columns(&stock), "failed to parse stock")

	return stock
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}
