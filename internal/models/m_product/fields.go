package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID            = "product_id"
	Name                 = "name"
	Description          = "description"
	Category             = "category"
	UnitPriceNumerator   = "unit_price_numerator"
	UnitPriceDenominator = "unit_price_denominator"
	StockQuantity        = "stock_quantity"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
)

// Columns lists every column of the products table in DDL order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	Category,
	UnitPriceNumerator,
	UnitPriceDenominator,
	StockQuantity,
	CreatedAt,
	UpdatedAt,
}
