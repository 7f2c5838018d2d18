package m_order

import "time"

// Data represents the database model for the orders table.
type Data struct {
	OrderID          string    `spanner:"order_id"`
	UserID           string    `spanner:"user_id"`
	TotalNumerator   int64     `spanner:"total_numerator"`
	TotalDenominator int64     `spanner:"total_denominator"`
	Status           string    `spanner:"status"`
	PlacedAt         time.Time `spanner:"placed_at"`
}
