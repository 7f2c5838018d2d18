//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/outbox"
	"github.com/light-bringer/grocery-service/tests/testutil"
)

func TestOutboxRepo_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := outbox.NewRepo(clock.NewRealClock())

	domainEvent := &catalogdomain.ProductCreatedEvent{
		ProductID: "prod-1",
		Name:      "Fresh Bananas",
		CreatedAt: time.Now().UTC(),
	}

	event := repository.Enrich(domainEvent, `{"product_id":"prod-1","name":"Fresh Bananas"}`)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "product.created", event.EventType)
	assert.Equal(t, "prod-1", event.AggregateID)
	assert.Equal(t, "pending", event.Status)

	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(event)})
	require.NoError(t, err)

	testutil.AssertOutboxEvent(t, client, "product.created")
	testutil.AssertRowCount(t, client, "outbox_events", 1)
}

func TestOutboxRepo_EmptyPayloadStoredAsNull(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := outbox.NewRepo(clock.NewRealClock())

	domainEvent := &catalogdomain.ProductDeletedEvent{
		ProductID: "prod-2",
		Name:      "Doomed Product",
		DeletedAt: time.Now().UTC(),
	}

	event := repository.Enrich(domainEvent, "")
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(event)})
	require.NoError(t, err)

	var payload spanner.NullJSON
	row, err := client.Single().ReadRow(ctx, "outbox_events",
		spanner.Key{event.EventID}, []string{"payload"})
	require.NoError(t, err)
	require.NoError(t, row.Columns(&payload))
	assert.False(t, payload.Valid)
}
