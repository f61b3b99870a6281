package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"frs_backend/internal/feature/frsmodels/domain/entity"
)

// MaxArtifactSize is the maximum accepted artifact upload (50MB).
const MaxArtifactSize = 50 * 1024 * 1024

// ModelRepository abstracts the persistence layer for model records.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ModelRepository interface {
	// Create persists a new model record. It returns
	// ErrFilePathAlreadyExists when the artifact path is taken.
	Create(ctx context.Context, model *entity.FRSModel) error

	// FindByID retrieves a model record by ID.
	FindByID(ctx context.Context, id uint) (*entity.FRSModel, error)

	// ListByUserID retrieves all models uploaded by a user.
	ListByUserID(ctx context.Context, userID uint) ([]entity.FRSModel, error)
}

// ArtifactStore writes uploaded artifact blobs and returns their path.
type ArtifactStore interface {
	// Save stores the blob under the given name, failing rather than
	// overwriting an existing artifact.
	Save(ctx context.Context, name string, r io.Reader) (string, error)

	// Remove deletes a stored artifact.
	Remove(ctx context.Context, path string) error
}

// frsModelUsecase implements upload and lookup of model records.
type frsModelUsecase struct {
	models    ModelRepository
	artifacts ArtifactStore
}

// NewFRSModelUsecase creates a new instance of frsModelUsecase.
func NewFRSModelUsecase(models ModelRepository, artifacts ArtifactStore) *frsModelUsecase {
	return &frsModelUsecase{models: models, artifacts: artifacts}
}

// Upload stores the artifact blob and creates its model record. The stored
// path is prefixed with the owner ID, so two users can upload files with the
// same name while a single user re-uploading the same name is rejected. If
// the record cannot be persisted the blob is removed again.
func (u *frsModelUsecase) Upload(ctx context.Context, userID uint, name, filename string, r io.Reader, size int64) (*entity.FRSModel, error) {
	if filename == "" || r == nil {
		return nil, ErrArtifactRequired
	}
	if size > MaxArtifactSize {
		return nil, ErrArtifactTooLarge
	}

	path, err := u.artifacts.Save(ctx, fmt.Sprintf("%d_%s", userID, filename), r)
	if err != nil {
		return nil, err
	}

	model := &entity.FRSModel{
		Name:       name,
		FilePath:   path,
		UploadedAt: time.Now(),
		UserID:     userID,
	}
	if err := u.models.Create(ctx, model); err != nil {
		// Best effort: do not leave an orphaned blob behind
		_ = u.artifacts.Remove(ctx, path)
		return nil, err
	}
	return model, nil
}

// ListForUser returns the models uploaded by the given user.
func (u *frsModelUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.FRSModel, error) {
	return u.models.ListByUserID(ctx, userID)
}

// GetOwned returns a model only if it belongs to the given user; any other
// case reads as not found.
func (u *frsModelUsecase) GetOwned(ctx context.Context, userID, modelID uint) (*entity.FRSModel, error) {
	model, err := u.models.FindByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if model.UserID != userID {
		return nil, ErrModelNotFound
	}
	return model, nil
}
