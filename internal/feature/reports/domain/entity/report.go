// Package entity defines the domain entities for the reports feature.
package entity

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Validation errors returned by Validate.
var (
	ErrModelRequired   = errors.New("owning model is required")
	ErrPayloadRequired = errors.New("report payload is required")
	ErrPayloadInvalid  = errors.New("report payload is not valid JSON")
)

// Report is the structured result document recorded when a prediction run
// completes for a model. Reports are immutable after creation.
type Report struct {
	// ID is the unique identifier for the report.
	ID uint `gorm:"primaryKey"`

	// GeneratedAt is the time the report was generated. Set on creation.
	GeneratedAt time.Time `gorm:"not null"`

	// ModelID references the model the report was generated for.
	ModelID uint `gorm:"index;not null"`

	// Data is the semi-structured report payload (key/value metrics).
	Data datatypes.JSON
}

// TableName returns the table name for GORM.
func (Report) TableName() string {
	return "reports"
}

// Validate checks that the report belongs to a model and carries a valid
// JSON payload.
func (r *Report) Validate() error {
	if r.ModelID == 0 {
		return ErrModelRequired
	}
	if len(r.Data) == 0 {
		return ErrPayloadRequired
	}
	if !json.Valid(r.Data) {
		return ErrPayloadInvalid
	}
	return nil
}
