package m_price_history

// Field name constants for the price_history table.
const (
	TableName = "price_history"

	HistoryID           = "history_id"
	ProductID           = "product_id"
	OldPriceNumerator   = "old_price_numerator"
	OldPriceDenominator = "old_price_denominator"
	NewPriceNumerator   = "new_price_numerator"
	NewPriceDenominator = "new_price_denominator"
	ChangedBy           = "changed_by"
	ChangedReason       = "changed_reason"
	ChangedAt           = "changed_at"
)

// Columns lists every column of the price_history table in DDL order.
var Columns = []string{
	HistoryID,
	ProductID,
	OldPriceNumerator,
	OldPriceDenominator,
	NewPriceNumerator,
	NewPriceDenominator,
	ChangedBy,
	ChangedReason,
	ChangedAt,
}
