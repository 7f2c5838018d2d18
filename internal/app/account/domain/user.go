package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPasswordHash  = "password_hash"
	FieldAddress       = "address"
	FieldContactNumber = "contact_number"
)

// User is the aggregate root for account management. Password hashing
// happens in the use case layer; the aggregate only ever sees the hash.
type User struct {
	id            string
	name          string
	email         string
	passwordHash  string
	address       string
	contactNumber string
	role          auth.Role
	createdAt     time.Time
	updatedAt     time.Time

	clock clock.Clock

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewUser creates a new User aggregate (for registration).
func NewUser(id, name, email, passwordHash string, role auth.Role, now time.Time, clk clock.Clock) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, ErrEmptyPassword
	}

	u := &User{
		id:           id,
		name:         name,
		email:        normalizeEmail(email),
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
		clock:        clk,
		changes:      NewChangeTracker(),
		events:       make([]DomainEvent, 0),
	}

	u.recordEvent(&UserRegisteredEvent{
		UserID:       u.id,
		Email:        u.email,
		Role:         string(u.role),
		RegisteredAt: u.createdAt,
	})

	return u, nil
}

// ReconstructUser reconstitutes a User from the database.
func ReconstructUser(
	id, name, email, passwordHash, address, contactNumber string,
	role auth.Role,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		address:       address,
		contactNumber: contactNumber,
		role:          role,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		clock:         clk,
		changes:       NewChangeTracker(),
		events:        make([]DomainEvent, 0),
	}
}

// Getters
func (u *User) ID() string                  { return u.id }
func (u *User) Name() string                { return u.name }
func (u *User) Email() string               { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Address() string             { return u.address }
func (u *User) ContactNumber() string       { return u.contactNumber }
func (u *User) Role() auth.Role             { return u.role }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
func (u *User) Changes() *ChangeTracker     { return u.changes }
func (u *User) DomainEvents() []DomainEvent { return u.events }

// SetName updates the user's display name.
func (u *User) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if u.name == name {
		return nil
	}

	u.name = name
	u.touch(FieldName)
	return nil
}

// SetEmail updates the user's email address. Uniqueness against other
// accounts is enforced by the repository, not here.
func (u *User) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	normalized := normalizeEmail(email)
	if u.email == normalized {
		return nil
	}

	u.email = normalized
	u.touch(FieldEmail)
	return nil
}

// SetPasswordHash replaces the stored password hash.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return ErrEmptyPassword
	}

	u.passwordHash = hash
	u.touch(FieldPasswordHash)
	return nil
}

// SetAddress updates the delivery address. Empty clears it.
func (u *User) SetAddress(address string) {
	if u.address == address {
		return
	}

	u.address = address
	u.touch(FieldAddress)
}

// SetContactNumber updates the contact number. Empty clears it.
func (u *User) SetContactNumber(contactNumber string) {
	if u.contactNumber == contactNumber {
		return
	}

	u.contactNumber = contactNumber
	u.touch(FieldContactNumber)
}

// touch marks a field dirty, bumps updatedAt and records a profile
// update event once per mutation batch.
func (u *User) touch(field string) {
	u.changes.MarkDirty(field)
	u.updatedAt = u.clock.Now()

	for _, e := range u.events {
		if _, ok := e.(*ProfileUpdatedEvent); ok {
			return
		}
	}
	u.recordEvent(&ProfileUpdatedEvent{
		UserID:    u.id,
		UpdatedAt: u.updatedAt,
	})
}

func (u *User) recordEvent(event DomainEvent) {
	u.events = append(u.events, event)
}

// ClearEvents removes all recorded events.
func (u *User) ClearEvents() {
	u.events = nil
}

// validateEmail applies a minimal structural check; real verification
// would happen out of band.
func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return ErrInvalidEmail
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
