package m_user

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.UserID,
			data.Name,
			data.Email,
			data.PasswordHash,
			data.Address,
			data.ContactNumber,
			data.Role,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific user fields.
func (m *Model) UpdateMut(userID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, UserID)
	values = append(values, userID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}
