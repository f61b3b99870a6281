// Package entity defines the domain entities for the frsmodels feature.
package entity

import (
	"errors"
	"time"
)

// Validation errors returned by Validate.
var (
	ErrFilePathRequired = errors.New("file path is required")
	ErrOwnerRequired    = errors.New("owning user is required")
)

// FRSModel is the record of an uploaded facial-recognition model artifact.
// The artifact itself is an opaque blob on disk; this row only carries its
// metadata and location. Records are immutable after creation except through
// the admin surface.
type FRSModel struct {
	// ID is the unique identifier for the model record.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown in model selectors. It does not have
	// to be unique and may be empty.
	Name string `gorm:"size:100"`

	// FilePath is the server-assigned location of the stored artifact.
	// It is unique across all models.
	FilePath string `gorm:"uniqueIndex;size:255;not null"`

	// UploadedAt is the time the artifact was uploaded. Set on creation.
	UploadedAt time.Time `gorm:"not null"`

	// UserID references the user that uploaded the model. Relationships are
	// foreign keys plus explicit query methods; there is no lazy traversal.
	UserID uint `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (FRSModel) TableName() string {
	return "frs_models"
}

// Validate checks the production invariants: every model points at a stored
// artifact and belongs to exactly one user.
func (m *FRSModel) Validate() error {
	if m.FilePath == "" {
		return ErrFilePathRequired
	}
	if m.UserID == 0 {
		return ErrOwnerRequired
	}
	return nil
}
