// Package entity defines the domain entities for the users feature.
package entity

import (
	"errors"
	"regexp"
	"time"
)

// DefaultImageFile is the profile image assigned to users who have not
// uploaded one of their own.
const DefaultImageFile = "default.jpg"

// emailPattern accepts addresses with a local part, an @, and a dotted domain.
// Format checking only; deliverability is not verified.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation errors returned by Validate. They are checked before every
// persist, so an invalid user never produces a partial write.
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("the e-mail is invalid")
	ErrPasswordRequired = errors.New("password hash is required")
)

// User represents a registered account that owns uploaded model records.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the unique display name chosen at registration.
	Username string `gorm:"uniqueIndex;size:50;not null"`

	// Email is the user's unique email address used for authentication.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// ImageFile is the file name of the profile picture.
	ImageFile string `gorm:"size:255;not null;default:default.jpg"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}

// Validate checks the required fields and the email format. Repositories call
// it on every create and update.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrUsernameRequired
	}
	if u.Email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(u.Email) {
		return ErrEmailInvalid
	}
	if u.PasswordHash == "" {
		return ErrPasswordRequired
	}
	return nil
}
