// Package usecase implements the business logic for the frsmodels feature.
package usecase

import "errors"

var (
	// ErrModelNotFound is returned when a model does not exist or does not
	// belong to the requesting user. The two cases are indistinguishable so
	// foreign IDs cannot be probed.
	ErrModelNotFound = errors.New("model not found")

	// ErrFilePathAlreadyExists is returned when a model record would reuse an
	// existing artifact path.
	ErrFilePathAlreadyExists = errors.New("a model with this file path already exists")

	// ErrArtifactTooLarge is returned when an upload exceeds the size limit.
	ErrArtifactTooLarge = errors.New("model artifact exceeds the upload size limit")

	// ErrArtifactRequired is returned when an upload carries no file.
	ErrArtifactRequired = errors.New("model artifact file is required")
)
