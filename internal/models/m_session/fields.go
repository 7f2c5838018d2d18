package m_session

// Field name constants for the sessions table.
const (
	TableName = "sessions"

	SessionToken = "session_token"
	UserID       = "user_id"
	CreatedAt    = "created_at"
	ExpiresAt    = "expires_at"
)

// Columns lists every column of the sessions table in DDL order.
var Columns = []string{
	SessionToken,
	UserID,
	CreatedAt,
	ExpiresAt,
}
