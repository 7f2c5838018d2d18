package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
)

// readOutboxPayload fetches the payload of the first outbox event with the
// given type. Payloads are stored as JSON strings, so they come back as a
// Go string holding the event document.
func readOutboxPayload(t *testing.T, suite *Services, eventType string) string {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT payload FROM outbox_events WHERE event_type = @eventType LIMIT 1",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := suite.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)

	var payload spanner.NullJSON
	require.NoError(t, row.Columns(&payload))
	require.True(t, payload.Valid, "outbox payload is null")

	s, ok := payload.Value.(string)
	require.True(t, ok, "outbox payload is not a string")
	return s
}
