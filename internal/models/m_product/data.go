package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	ProductID            string    `spanner:"product_id"`
	Name                 string    `spanner:"name"`
	Description          string    `spanner:"description"`
	Category             string    `spanner:"category"`
	UnitPriceNumerator   int64     `spanner:"unit_price_numerator"`
	UnitPriceDenominator int64     `spanner:"unit_price_denominator"`
	StockQuantity        int64     `spanner:"stock_quantity"`
	CreatedAt            time.Time `spanner:"created_at"`
	UpdatedAt            time.Time `spanner:"updated_at"`
}
