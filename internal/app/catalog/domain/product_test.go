package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestProduct(t *testing.T) *Product {
	t.Helper()

	price, err := money.Parse("3.49")
	require.NoError(t, err)

	p, err := NewProduct("p1", "Whole Milk (1 gallon)", "Dairy staple", "dairy", price, 50, testTime, clock.NewMockClock(testTime))
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p := newTestProduct(t)

		assert.Equal(t, "p1", p.ID())
		assert.Equal(t, "Whole Milk (1 gallon)", p.Name())
		assert.Equal(t, int64(50), p.Stock())
		assert.Equal(t, "3.49", p.UnitPrice().String())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		price, _ := money.Parse("1.00")
		_, err := NewProduct("p1", "", "", "dairy", price, 1, testTime, clock.NewMockClock(testTime))
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("zero price rejected", func(t *testing.T) {
		_, err := NewProduct("p1", "Milk", "", "dairy", money.Zero(), 1, testTime, clock.NewMockClock(testTime))
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("nil price rejected", func(t *testing.T) {
		_, err := NewProduct("p1", "Milk", "", "dairy", nil, 1, testTime, clock.NewMockClock(testTime))
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		price, _ := money.Parse("1.00")
		_, err := NewProduct("p1", "Milk", "", "dairy", price, -1, testTime, clock.NewMockClock(testTime))
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("new product marks all fields dirty and emits created event", func(t *testing.T) {
		p := newTestProduct(t)

		assert.True(t, p.Changes().Dirty(FieldName))
		assert.True(t, p.Changes().Dirty(FieldUnitPrice))
		assert.True(t, p.Changes().Dirty(FieldStock))

		require.Len(t, p.DomainEvents(), 1)
		assert.Equal(t, "product.created", p.DomainEvents()[0].EventType())
	})
}

func TestProduct_SetUnitPrice(t *testing.T) {
	p := newTestProduct(t)
	p.ClearEvents()
	p.Changes().Clear()

	newPrice, _ := money.Parse("4.99")
	require.NoError(t, p.SetUnitPrice(newPrice))

	assert.Equal(t, "4.99", p.UnitPrice().String())
	assert.True(t, p.Changes().Dirty(FieldUnitPrice))
	assert.False(t, p.Changes().Dirty(FieldName))

	require.Len(t, p.DomainEvents(), 1)
	evt, ok := p.DomainEvents()[0].(*ProductPriceChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "3.49", evt.OldPrice.String())
	assert.Equal(t, "4.99", evt.NewPrice.String())

	t.Run("zero price rejected", func(t *testing.T) {
		assert.ErrorIs(t, p.SetUnitPrice(money.Zero()), ErrInvalidPrice)
	})
}

func TestProduct_SetStock(t *testing.T) {
	p := newTestProduct(t)
	p.ClearEvents()

	require.NoError(t, p.SetStock(10))
	assert.Equal(t, int64(10), p.Stock())

	assert.ErrorIs(t, p.SetStock(-5), ErrInvalidStock)
	assert.Equal(t, int64(10), p.Stock())
}

func TestProduct_InStock(t *testing.T) {
	p := newTestProduct(t) // stock 50

	assert.True(t, p.InStock(1))
	assert.True(t, p.InStock(50))
	assert.False(t, p.InStock(51))
	assert.False(t, p.InStock(0))
	assert.False(t, p.InStock(-1))
}

func TestProduct_Reconstruct(t *testing.T) {
	price, _ := money.Parse("2.49")
	p := ReconstructProduct("p2", "Tomato Sauce (24 oz)", "", "pantry", price, 45, testTime, testTime, clock.NewMockClock(testTime))

	// Reconstructed aggregates start clean
	assert.False(t, p.Changes().HasChanges())
	assert.Empty(t, p.DomainEvents())
}
