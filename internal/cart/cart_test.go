package cart

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

func testProduct(t *testing.T, id, name, price string, stock int64) Product {
	t.Helper()
	m, err := money.Parse(price)
	require.NoError(t, err)
	return Product{ProductID: id, Name: name, UnitPrice: m, Stock: stock}
}

func TestCart_Add(t *testing.T) {
	t.Run("new product gets quantity one", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].Quantity)
	})

	t.Run("repeated add increments quantity", func(t *testing.T) {
		c := New()
		p := testProduct(t, "p1", "Fresh Bananas", "1.99", 100)
		c.Add(p)
		c.Add(p)
		c.Add(p)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].Quantity)
	})

	t.Run("add clamps at stock snapshot", func(t *testing.T) {
		c := New()
		p := testProduct(t, "p1", "Salmon Fillet", "12.99", 2)
		c.Add(p)
		c.Add(p)
		c.Add(p)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].Quantity)
	})

	t.Run("out of stock product is not added", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, "p1", "Salmon Fillet", "12.99", 0))

		assert.Empty(t, c.Items())
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))
		c.UpdateQuantity("p1", 5)

		assert.Equal(t, int64(5), c.TotalItems())
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))
		c.UpdateQuantity("p1", 0)

		assert.Empty(t, c.Items())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))
		c.UpdateQuantity("p1", -3)

		assert.Empty(t, c.Items())
	})

	t.Run("clamps to stock snapshot", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, "p1", "Salmon Fillet", "12.99", 10))
		c.UpdateQuantity("p1", 50)

		assert.Equal(t, int64(10), c.TotalItems())
	})

	t.Run("unknown product ignored", func(t *testing.T) {
		c := New()
		c.UpdateQuantity("missing", 5)

		assert.Empty(t, c.Items())
	})
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))
	c.Add(testProduct(t, "p2", "Organic Apples", "4.99", 75))
	c.Add(testProduct(t, "p3", "Whole Milk", "3.49", 50))

	c.Remove("p2")

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p3", items[1].ProductID)

	// index stays consistent after the middle removal
	c.UpdateQuantity("p3", 4)
	assert.Equal(t, int64(5), c.TotalItems())
}

func TestCart_TotalPrice(t *testing.T) {
	c := New()
	c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))
	c.UpdateQuantity("p1", 3)
	c.Add(testProduct(t, "p2", "Organic Apples", "4.99", 75))

	assert.Equal(t, "10.96", c.TotalPrice().String())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))
	c.Clear()

	assert.Empty(t, c.Items())
	assert.Equal(t, int64(0), c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestCart_ConcurrentAdds(t *testing.T) {
	c := New()
	p := testProduct(t, "p1", "Fresh Bananas", "1.99", 1000)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(p)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), c.TotalItems())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStore(path)

	c := New()
	c.Add(testProduct(t, "p1", "Fresh Bananas", "1.99", 100))
	c.UpdateQuantity("p1", 3)
	c.Add(testProduct(t, "p2", "Organic Apples", "4.99", 75))

	require.NoError(t, store.Save(c))

	restored, err := store.Load()
	require.NoError(t, err)

	items := restored.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, int64(3), items[0].Quantity)
	assert.Equal(t, "1.99", items[0].UnitPrice.String())
	assert.Equal(t, "10.96", restored.TotalPrice().String())
}

func TestFileStore_LoadMissingFileReturnsEmptyCart(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	c, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, c.Items())
}
