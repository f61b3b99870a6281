// Package usecase implements the business logic for the reports feature.
package usecase

import "errors"

var (
	// ErrReportNotFound is returned when a report does not exist or belongs
	// to another user's model.
	ErrReportNotFound = errors.New("report not found")

	// ErrModelNotFound is returned when the target model does not exist or
	// belongs to another user.
	ErrModelNotFound = errors.New("model not found")
)
