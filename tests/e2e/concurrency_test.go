package e2e

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/light-bringer/grocery-service/internal/app/order/domain"
	"github.com/light-bringer/grocery-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/grocery-service/tests/testutil"
)

// TestConcurrentOrders_NoOversell races two orders that together exceed
// stock. Expected: exactly one succeeds, the loser fails with insufficient
// stock, and the final stock level accounts for only the winner.
func TestConcurrentOrders_NoOversell(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	alice := testutil.CreateTestUser(t, suite.Client, "Alice", "alice@example.com", "password1")
	bob := testutil.CreateTestUser(t, suite.Client, "Bob", "bob@example.com", "password2")
	salmon := testutil.CreateTestProduct(t, suite.Client, "Salmon Fillet", "12.99", 10)

	var wg sync.WaitGroup
	var err1, err2 error

	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err1 = suite.PlaceOrder.Execute(ctx, &place_order.Request{
			Principal: customerPrincipal(alice),
			Items:     []place_order.ItemRequest{{ProductID: salmon, Quantity: 6}},
		})
	}()

	go func() {
		defer wg.Done()
		_, err2 = suite.PlaceOrder.Execute(ctx, &place_order.Request{
			Principal: customerPrincipal(bob),
			Items:     []place_order.ItemRequest{{ProductID: salmon, Quantity: 6}},
		})
	}()

	wg.Wait()

	// Exactly one order wins
	if err1 == nil {
		require.Error(t, err2, "both orders succeeded; stock oversold")
		assert.True(t, errors.Is(err2, orderdomain.ErrInsufficientStock))
	} else {
		require.NoError(t, err2, "both orders failed")
		assert.True(t, errors.Is(err1, orderdomain.ErrInsufficientStock))
	}

	assert.Equal(t, int64(4), testutil.GetProductStock(t, suite.Client, salmon))
	testutil.AssertRowCount(t, suite.Client, "orders", 1)
}

// TestConcurrentOrders_BothFitBothSucceed races two orders that fit within
// stock together; neither should be rejected.
func TestConcurrentOrders_BothFitBothSucceed(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	alice := testutil.CreateTestUser(t, suite.Client, "Alice", "alice@example.com", "password1")
	bob := testutil.CreateTestUser(t, suite.Client, "Bob", "bob@example.com", "password2")
	rice := testutil.CreateTestProduct(t, suite.Client, "Jasmine Rice", "3.99", 30)

	var wg sync.WaitGroup
	var err1, err2 error

	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err1 = suite.PlaceOrder.Execute(ctx, &place_order.Request{
			Principal: customerPrincipal(alice),
			Items:     []place_order.ItemRequest{{ProductID: rice, Quantity: 10}},
		})
	}()

	go func() {
		defer wg.Done()
		_, err2 = suite.PlaceOrder.Execute(ctx, &place_order.Request{
			Principal: customerPrincipal(bob),
			Items:     []place_order.ItemRequest{{ProductID: rice, Quantity: 12}},
		})
	}()

	wg.Wait()

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, int64(8), testutil.GetProductStock(t, suite.Client, rice))
	testutil.AssertRowCount(t, suite.Client, "orders", 2)
}
