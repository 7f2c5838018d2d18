package domain

import "time"

// DomainEvent is the base interface for all account domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// UserRegisteredEvent is emitted when a new account is created.
type UserRegisteredEvent struct {
	UserID       string
	Email        string
	Role         string
	RegisteredAt time.Time
}

func (e *UserRegisteredEvent) EventType() string {
	return "user.registered"
}

func (e *UserRegisteredEvent) AggregateID() string {
	return e.UserID
}

// ProfileUpdatedEvent is emitted when a user changes profile data.
// Recorded at most once per update, whatever the number of changed fields.
type ProfileUpdatedEvent struct {
	UserID    string
	UpdatedAt time.Time
}

func (e *ProfileUpdatedEvent) EventType() string {
	return "user.profile_updated"
}

func (e *ProfileUpdatedEvent) AggregateID() string {
	return e.UserID
}
