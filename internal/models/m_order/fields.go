package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID          = "order_id"
	UserID           = "user_id"
	TotalNumerator   = "total_numerator"
	TotalDenominator = "total_denominator"
	Status           = "status"
	PlacedAt         = "placed_at"
)

// Order status constants. Orders carry a single fixed status today;
// no fulfilment state machine exists.
const (
	StatusPlaced = "PLACED"
)

// Columns lists every column of the orders table in DDL order.
var Columns = []string{
	OrderID,
	UserID,
	TotalNumerator,
	TotalDenominator,
	Status,
	PlacedAt,
}
