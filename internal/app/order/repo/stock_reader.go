package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	catalogdomain "github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	"github.com/light-bringer/grocery-service/internal/app/order/contracts"
	"github.com/light-bringer/grocery-service/internal/models/m_product"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// StockReader implements contracts.StockReader against the products table.
type StockReader struct{}

// NewStockReader creates a new StockReader.
func NewStockReader() contracts.StockReader {
	return &StockReader{}
}

// ReadForUpdate reads a product row through the transaction, so the commit
// fails and retries if another transaction changes the row first.
func (r *StockReader) ReadForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*contracts.ProductSnapshot, error) {
	row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.ProductID,
		m_product.Name,
		m_product.UnitPriceNumerator,
		m_product.UnitPriceDenominator,
		m_product.StockQuantity,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", catalogdomain.ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to read product %s: %w", productID, err)
	}

	var data struct {
		ProductID            string `spanner:"product_id"`
		Name                 string `spanner:"name"`
		UnitPriceNumerator   int64  `spanner:"unit_price_numerator"`
		UnitPriceDenominator int64  `spanner:"unit_price_denominator"`
		StockQuantity        int64  `spanner:"stock_quantity"`
	}
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product %s: %w", productID, err)
	}

	unitPrice, err := money.New(data.UnitPriceNumerator, data.UnitPriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %s: %w", productID, err)
	}

	return &contracts.ProductSnapshot{
		ProductID: data.ProductID,
		Name:      data.Name,
		UnitPrice: unitPrice,
		Stock:     data.StockQuantity,
	}, nil
}

// DecrementMut creates a mutation setting the product's stock level.
// newStock must be computed from the snapshot read in the same transaction.
func (r *StockReader) DecrementMut(productID string, newStock int64, now time.Time) *spanner.Mutation {
	return spanner.Update(
		m_product.TableName,
		[]string{m_product.ProductID, m_product.StockQuantity, m_product.UpdatedAt},
		[]interface{}{productID, newStock, now},
	)
}
