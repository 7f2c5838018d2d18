// Package auth defines the authenticated identity passed explicitly into
// every use case. Core operations never read a "current user" from ambient
// state; the transport layer resolves a session and hands the Principal down.
package auth

import "errors"

// Role is a user's authorization role.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Sentinel errors for access control failures.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("admin role required")
)

// Principal identifies an authenticated caller.
type Principal struct {
	UserID string
	Role   Role
}

// IsZero returns true if no authenticated identity is present.
func (p Principal) IsZero() bool {
	return p.UserID == ""
}

// IsAdmin returns true if the principal holds the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// RequireAuthenticated fails unless a principal is present.
func RequireAuthenticated(p Principal) error {
	if p.IsZero() {
		return ErrUnauthenticated
	}
	return nil
}

// RequireAdmin fails unless the principal is an authenticated admin.
func RequireAdmin(p Principal) error {
	if p.IsZero() {
		return ErrUnauthenticated
	}
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
