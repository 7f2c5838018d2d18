package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
)

// SetupSpannerTest creates a test Spanner client and returns a cleanup
// function. Tests are skipped unless a Spanner emulator is configured.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set; skipping Spanner-backed test")
	}

	ctx := context.Background()
	spannerDB := GetTestSpannerDB()

	client, err := spanner.NewClient(ctx, spannerDB)
	require.NoError(t, err, "failed to create Spanner client")

	// Clean database before test
	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database string.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/grocery-store-test"
}

// CleanDatabase truncates all tables for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()

	// order_items is interleaved in orders and cascades
	mutations := []*spanner.Mutation{
		spanner.Delete("outbox_events", spanner.AllKeys()),
		spanner.Delete("price_history", spanner.AllKeys()),
		spanner.Delete("orders", spanner.AllKeys()),
		spanner.Delete("sessions", spanner.AllKeys()),
		spanner.Delete("products", spanner.AllKeys()),
		spanner.Delete("users", spanner.AllKeys()),
	}

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	err = row.Columns(&count)
	require.NoError(t, err, "failed to parse count")

	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
