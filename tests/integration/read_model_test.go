//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogcontracts "github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
	catalogrepo "github.com/light-bringer/grocery-service/internal/app/catalog/repo"
	orderdomain "github.com/light-bringer/grocery-service/internal/app/order/domain"
	orderrepo "github.com/light-bringer/grocery-service/internal/app/order/repo"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
	"github.com/light-bringer/grocery-service/tests/testutil"
)

func TestCatalogReadModel_GetProductByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := catalogrepo.NewReadModel(client)

	productID := testutil.CreateTestProduct(t, client, "Fresh Bananas", "1.99", 100)

	dto, err := readModel.GetProductByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, productID, dto.ProductID)
	assert.Equal(t, "Fresh Bananas", dto.Name)
	assert.Equal(t, "1.99", dto.Price)
	assert.InDelta(t, 1.99, dto.UnitPrice, 0.001)
	assert.Equal(t, int64(100), dto.Stock)
}

func TestCatalogReadModel_ListProducts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := catalogrepo.NewReadModel(client)

	testutil.CreateTestProduct(t, client, "Whole Wheat Bread", "2.99", 30)
	testutil.CreateTestProduct(t, client, "Fresh Bananas", "1.99", 100)
	testutil.CreateTestProduct(t, client, "Whole Milk (1 gallon)", "3.49", 50)

	t.Run("all products, name ascending", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &catalogcontracts.ListFilter{})
		require.NoError(t, err)
		require.Len(t, result.Products, 3)
		assert.Equal(t, "Fresh Bananas", result.Products[0].Name)
		assert.Equal(t, "Whole Milk (1 gallon)", result.Products[1].Name)
		assert.Equal(t, "Whole Wheat Bread", result.Products[2].Name)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &catalogcontracts.ListFilter{Search: "WHOLE"})
		require.NoError(t, err)
		require.Len(t, result.Products, 2)
	})

	t.Run("search matches substrings", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &catalogcontracts.ListFilter{Search: "gallon"})
		require.NoError(t, err)
		require.Len(t, result.Products, 1)
		assert.Equal(t, "Whole Milk (1 gallon)", result.Products[0].Name)
	})

	t.Run("limit caps results", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &catalogcontracts.ListFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, result.Products, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &catalogcontracts.ListFilter{Search: "caviar"})
		require.NoError(t, err)
		assert.Empty(t, result.Products)
	})
}

func TestOrderReadModel_ListByUser(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	writeRepo := orderrepo.NewOrderRepo()
	readModel := orderrepo.NewReadModel(client)

	userID := testutil.CreateTestUser(t, client, "John Doe", "john@example.com", "pass1234")
	otherID := testutil.CreateTestUser(t, client, "Jane Smith", "jane@example.com", "pass1234")

	price, err := money.Parse("3.49")
	require.NoError(t, err)

	mkOrder := func(orderID string, ownerID string, placedAt time.Time, qty int64) *orderdomain.Order {
		item, err := orderdomain.NewOrderItem(orderID+"-item-1", "prod-1", "Whole Milk (1 gallon)", qty, price)
		require.NoError(t, err)
		order, err := orderdomain.NewOrder(orderID, ownerID, []*orderdomain.OrderItem{item}, placedAt)
		require.NoError(t, err)
		return order
	}

	base := time.Now().UTC().Truncate(time.Microsecond)
	for _, o := range []*orderdomain.Order{
		mkOrder("order-old", userID, base.Add(-2*time.Hour), 1),
		mkOrder("order-new", userID, base, 2),
		mkOrder("order-other", otherID, base.Add(-time.Hour), 3),
	} {
		muts, err := writeRepo.InsertMuts(o)
		require.NoError(t, err)
		_, err = client.Apply(ctx, muts)
		require.NoError(t, err)
	}

	orders, err := readModel.ListByUser(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2, "only the caller's orders are listed")

	// Newest first
	assert.Equal(t, "order-new", orders[0].OrderID)
	assert.Equal(t, "order-old", orders[1].OrderID)

	// Items nested with the frozen snapshot
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Whole Milk (1 gallon)", orders[0].Items[0].ProductName)
	assert.Equal(t, int64(2), orders[0].Items[0].Quantity)
	assert.Equal(t, "3.49", orders[0].Items[0].Price)
	assert.Equal(t, "6.98", orders[0].TotalStr)
}

func TestOrderReadModel_GetByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	writeRepo := orderrepo.NewOrderRepo()
	readModel := orderrepo.NewReadModel(client)

	userID := testutil.CreateTestUser(t, client, "John Doe", "john@example.com", "pass1234")

	price, err := money.Parse("1.99")
	require.NoError(t, err)
	item, err := orderdomain.NewOrderItem("item-1", "prod-1", "Fresh Bananas", 3, price)
	require.NoError(t, err)
	order, err := orderdomain.NewOrder("order-1", userID, []*orderdomain.OrderItem{item}, time.Now().UTC())
	require.NoError(t, err)

	muts, err := writeRepo.InsertMuts(order)
	require.NoError(t, err)
	_, err = client.Apply(ctx, muts)
	require.NoError(t, err)

	dto, err := readModel.GetByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, userID, dto.UserID)
	assert.Equal(t, "5.97", dto.TotalStr)
	require.Len(t, dto.Items, 1)

	_, err = readModel.GetByID(ctx, "no-such-order")
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}
