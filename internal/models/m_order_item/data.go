package m_order_item

// Data represents the database model for the order_items table.
type Data struct {
	OrderID              string `spanner:"order_id"`
	OrderItemID          string `spanner:"order_item_id"`
	ProductID            string `spanner:"product_id"`
	ProductName          string `spanner:"product_name"`
	Quantity             int64  `spanner:"quantity"`
	UnitPriceNumerator   int64  `spanner:"unit_price_numerator"`
	UnitPriceDenominator int64  `spanner:"unit_price_denominator"`
}
