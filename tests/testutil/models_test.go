package testutil

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/grocery-service/internal/models/m_order"
	"github.com/light-bringer/grocery-service/internal/models/m_order_item"
	"github.com/light-bringer/grocery-service/internal/models/m_outbox"
	"github.com/light-bringer/grocery-service/internal/models/m_price_history"
	"github.com/light-bringer/grocery-service/internal/models/m_product"
	"github.com/light-bringer/grocery-service/internal/models/m_session"
	"github.com/light-bringer/grocery-service/internal/models/m_user"
)

// spannerTags returns the spanner column tags of a row struct in field order.
func spannerTags(row interface{}) []string {
	typ := reflect.TypeOf(row)
	tags := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tags = append(tags, typ.Field(i).Tag.Get("spanner"))
	}
	return tags
}

// Read models select Columns and decode rows with Row.ToStruct, which
// matches a column to a field only through its spanner tag. Every table's
// Data struct must therefore tag each column, in DDL order.
func TestRowStructTagsMatchColumns(t *testing.T) {
	tests := []struct {
		table   string
		row     interface{}
		columns []string
	}{
		{"products", m_product.Data{}, m_product.Columns},
		{"orders", m_order.Data{}, m_order.Columns},
		{"order_items", m_order_item.Data{}, m_order_item.Columns},
		{"users", m_user.Data{}, m_user.Columns},
		{"sessions", m_session.Data{}, m_session.Columns},
		{"outbox_events", m_outbox.Data{}, m_outbox.Columns},
		{"price_history", m_price_history.Data{}, m_price_history.Columns},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			assert.Equal(t, tt.columns, spannerTags(tt.row))
		})
	}
}
