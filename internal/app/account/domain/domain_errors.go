package domain

import "errors"

// Domain errors for the account context.
var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already registered to
	// another account
	ErrEmailTaken = errors.New("email already in use")

	// ErrWrongPassword indicates login credential verification failed
	ErrWrongPassword = errors.New("invalid credentials")

	// ErrCurrentPasswordInvalid indicates the current password supplied
	// with a password change request did not verify. Unlike a failed
	// login, the caller is already authenticated; this is input
	// validation, not an authentication failure.
	ErrCurrentPasswordInvalid = errors.New("current password is incorrect")

	// ErrSessionNotFound indicates the session token is unknown or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyName indicates an empty user name
	ErrEmptyName = errors.New("user name cannot be empty")

	// ErrInvalidEmail indicates a malformed email address
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmptyPassword indicates an empty password
	ErrEmptyPassword = errors.New("password cannot be empty")
)
