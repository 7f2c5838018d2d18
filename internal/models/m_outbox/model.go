package m_outbox

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an outbox event.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.EventID,
			data.EventType,
			data.AggregateID,
			data.Payload,
			data.Status,
			data.CreatedAt,
			data.ProcessedAt,
			data.RetryCount,
			data.ErrorMessage,
		},
	)
}

// MarkProcessedMut creates a mutation setting an event's status and
// processing timestamp.
func (m *Model) MarkProcessedMut(eventID, status string, processedAt spanner.NullTime) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{EventID, Status, ProcessedAt},
		[]interface{}{eventID, status, processedAt},
	)
}

// DeleteMut creates a mutation deleting an outbox event.
func (m *Model) DeleteMut(eventID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{eventID})
}
