package m_order_item

// Field name constants for the order_items table.
// The table is interleaved in orders; product_name and the unit price are
// denormalized snapshots taken at order time, so order history survives
// later product edits and deletes.
const (
	TableName = "order_items"

	OrderID              = "order_id"
	OrderItemID          = "order_item_id"
	ProductID            = "product_id"
	ProductName          = "product_name"
	Quantity             = "quantity"
	UnitPriceNumerator   = "unit_price_numerator"
	UnitPriceDenominator = "unit_price_denominator"
)

// Columns lists every column of the order_items table in DDL order.
var Columns = []string{
	OrderID,
	OrderItemID,
	ProductID,
	ProductName,
	Quantity,
	UnitPriceNumerator,
	UnitPriceDenominator,
}
