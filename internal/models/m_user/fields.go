package m_user

// Field name constants for the users table.
const (
	TableName = "users"

	UserID        = "user_id"
	Name          = "name"
	Email         = "email"
	PasswordHash  = "password_hash"
	Address       = "address"
	ContactNumber = "contact_number"
	Role          = "role"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)

// Columns lists every column of the users table in DDL order.
var Columns = []string{
	UserID,
	Name,
	Email,
	PasswordHash,
	Address,
	ContactNumber,
	Role,
	CreatedAt,
	UpdatedAt,
}
