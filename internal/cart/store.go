package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// Store persists cart contents between sessions.
type Store interface {
	// Load restores a previously saved cart. A store with no saved
	// state returns an empty cart.
	Load() (*Cart, error)

	// Save persists the cart's current contents.
	Save(c *Cart) error
}

// itemState is the serialized form of a cart line. Prices round-trip as
// exact decimal strings.
type itemState struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Stock     int64  `json:"stock"`
}

// FileStore persists the cart as a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load restores the cart from disk.
func (s *FileStore) Load() (*Cart, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var states []itemState
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("failed to parse cart file: %w", err)
	}

	c := New()
	for _, st := range states {
		price, err := money.Parse(st.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid price for product %s: %w", st.ProductID, err)
		}

		c.Add(Product{
			ProductID: st.ProductID,
			Name:      st.Name,
			UnitPrice: price,
			Stock:     st.Stock,
		})
		c.UpdateQuantity(st.ProductID, st.Quantity)
	}

	return c, nil
}

// Save writes the cart to disk atomically (write temp file, then rename).
func (s *FileStore) Save(c *Cart) error {
	items := c.Items()
	states := make([]itemState, 0, len(items))
	for _, item := range items {
		states = append(states, itemState{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			Stock:     item.Stock,
		})
	}

	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cart-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cart file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace cart file: %w", err)
	}
	return nil
}
