// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when a username or email collides with
	// an existing account. The message is deliberately generic so responses
	// built from it do not reveal which field collided.
	ErrUserAlreadyExists = errors.New("username or email already taken")

	// ErrInvalidCredentials is returned when the email/password pair does not
	// match any account. Unknown email and wrong password are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordRequired is returned when a new password is empty.
	ErrPasswordRequired = errors.New("password is required")

	// ErrUserHasModels is returned when deleting a user that still owns model
	// records. The models must be deleted first.
	ErrUserHasModels = errors.New("user still owns model records")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
