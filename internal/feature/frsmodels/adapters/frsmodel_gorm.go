// Package adapters provides repository implementations for the frsmodels feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"frs_backend/internal/feature/frsmodels/domain/entity"
	"frs_backend/internal/feature/frsmodels/usecase"
	reportentity "frs_backend/internal/feature/reports/domain/entity"
)

// frsModelGorm is the GORM implementation of the ModelRepository interface.
type frsModelGorm struct {
	db *gorm.DB
}

// Compile-time check that frsModelGorm implements ModelRepository.
var _ usecase.ModelRepository = (*frsModelGorm)(nil)

// NewFRSModelGorm creates a new instance of frsModelGorm.
func NewFRSModelGorm(db *gorm.DB) *frsModelGorm {
	return &frsModelGorm{db: db}
}

// Create validates and inserts a model record. A duplicate file path is
// translated to usecase.ErrFilePathAlreadyExists.
func (r *frsModelGorm) Create(ctx context.Context, m *entity.FRSModel) error {
	if m == nil {
		return errors.New("model is nil")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if m.UploadedAt.IsZero() {
		m.UploadedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrFilePathAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a model record by ID.
func (r *frsModelGorm) FindByID(ctx context.Context, id uint) (*entity.FRSModel, error) {
	var m entity.FRSModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrModelNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListByUserID retrieves the models uploaded by a user, newest first.
func (r *frsModelGorm) ListByUserID(ctx context.Context, userID uint) ([]entity.FRSModel, error) {
	var models []entity.FRSModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// List returns all model records ordered by ID. Used by the admin surface.
func (r *frsModelGorm) List(ctx context.Context) ([]entity.FRSModel, error) {
	var models []entity.FRSModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// Delete removes a model record together with its reports. Reports cannot
// outlive their model, so both deletions happen in one transaction.
func (r *frsModelGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("model_id = ?", id).Delete(&reportentity.Report{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.FRSModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrModelNotFound
		}
		return nil
	})
}
