package m_price_history

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the price_history table.
// Old price columns are null for the initial price of a product.
type Data struct {
	HistoryID           string             `spanner:"history_id"`
	ProductID           string             `spanner:"product_id"`
	OldPriceNumerator   spanner.NullInt64  `spanner:"old_price_numerator"`
	OldPriceDenominator spanner.NullInt64  `spanner:"old_price_denominator"`
	NewPriceNumerator   int64              `spanner:"new_price_numerator"`
	NewPriceDenominator int64              `spanner:"new_price_denominator"`
	ChangedBy           string             `spanner:"changed_by"`
	ChangedReason       spanner.NullString `spanner:"changed_reason"`
	ChangedAt           time.Time          `spanner:"changed_at"`
}

// Model provides a facade for type-safe operations on the price_history table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a price change record.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.HistoryID,
			data.ProductID,
			data.OldPriceNumerator,
			data.OldPriceDenominator,
			data.NewPriceNumerator,
			data.NewPriceDenominator,
			data.ChangedBy,
			data.ChangedReason,
			data.ChangedAt,
		},
	)
}
