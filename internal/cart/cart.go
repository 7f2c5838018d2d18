// Package cart holds a client-side shopping cart. The cart is purely local
// state: stock figures are snapshots taken when items were added, and the
// server re-validates everything at order placement. Nothing here reserves
// inventory.
package cart

import (
	"sync"

	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// Product is the catalog data the cart needs to hold a line.
type Product struct {
	ProductID string
	Name      string
	UnitPrice *money.Money
	Stock     int64
}

// Item is one cart line.
type Item struct {
	ProductID string
	Name      string
	UnitPrice *money.Money
	Quantity  int64
	Stock     int64 // stock snapshot used as the add/update ceiling
}

// LineTotal returns unit price times quantity.
func (it *Item) LineTotal() *money.Money {
	return it.UnitPrice.MultiplyInt(it.Quantity)
}

// Cart is a concurrency-safe collection of items, preserving the order in
// which products were first added.
type Cart struct {
	mu    sync.Mutex
	items []*Item
	index map[string]int
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{
		items: make([]*Item, 0),
		index: make(map[string]int),
	}
}

// Add puts one unit of the product in the cart. Adding a product already
// in the cart increments its quantity. Quantity never exceeds the stock
// snapshot; adding at the ceiling is a no-op.
func (c *Cart) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pos, ok := c.index[p.ProductID]; ok {
		item := c.items[pos]
		if item.Quantity < item.Stock {
			item.Quantity++
		}
		return
	}

	if p.Stock <= 0 {
		return
	}

	c.index[p.ProductID] = len(c.items)
	c.items = append(c.items, &Item{
		ProductID: p.ProductID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice.Copy(),
		Quantity:  1,
		Stock:     p.Stock,
	})
}

// UpdateQuantity sets the quantity for a product. Zero or negative removes
// the line; anything above the stock snapshot clamps to it. Unknown
// products are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[productID]
	if !ok {
		return
	}

	if quantity <= 0 {
		c.removeAt(pos)
		return
	}

	item := c.items[pos]
	if quantity > item.Stock {
		quantity = item.Stock
	}
	item.Quantity = quantity
}

// Remove drops a product from the cart. Unknown products are ignored.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pos, ok := c.index[productID]; ok {
		c.removeAt(pos)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = c.items[:0]
	c.index = make(map[string]int)
}

// Items returns a snapshot of the cart lines.
func (c *Cart) Items() []*Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Item, len(c.items))
	for i, item := range c.items {
		copied := *item
		copied.UnitPrice = item.UnitPrice.Copy()
		out[i] = &copied
	}
	return out
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the exact sum of all line totals.
func (c *Cart) TotalPrice() *money.Money {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := money.Zero()
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// removeAt deletes the line at pos and reindexes. Caller holds the lock.
func (c *Cart) removeAt(pos int) {
	removed := c.items[pos].ProductID
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, removed)
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].ProductID] = i
	}
}
