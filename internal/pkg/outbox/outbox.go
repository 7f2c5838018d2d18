// Package outbox persists domain events in the same transaction as the
// state change that produced them, for later relay to downstream consumers.
package outbox

import (
	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/grocery-service/internal/models/m_outbox"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
)

// DomainEvent is the minimal surface an event must expose to be enqueued.
// Each bounded context defines its own event structs satisfying it.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// Event represents an enriched domain event ready for persistence.
type Event struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	Status      string
}

// Repository defines the interface for outbox event persistence.
type Repository interface {
	// InsertMut creates a mutation for inserting an outbox event
	InsertMut(event *Event) *spanner.Mutation

	// Enrich converts a domain event to an outbox event with metadata
	Enrich(event DomainEvent, payload string) *Event
}

// Repo implements Repository for Spanner.
type Repo struct {
	model *m_outbox.Model
	clock clock.Clock
}

// NewRepo creates a new outbox Repo.
func NewRepo(clk clock.Clock) Repository {
	return &Repo{
		model: m_outbox.NewModel(),
		clock: clk,
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *Repo) InsertMut(event *Event) *spanner.Mutation {
	payload := spanner.NullJSON{Value: event.Payload, Valid: event.Payload != ""}

	data := &m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     payload,
		Status:      event.Status,
		CreatedAt:   r.clock.Now(),
		RetryCount:  0,
	}

	return r.model.InsertMut(data)
}

// Enrich converts a domain event to an outbox event with metadata.
func (r *Repo) Enrich(event DomainEvent, payload string) *Event {
	return &Event{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}
