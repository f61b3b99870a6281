// Package adapters provides repository implementations for the reports feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"frs_backend/internal/feature/reports/domain/entity"
	"frs_backend/internal/feature/reports/usecase"
)

// reportGorm is the GORM implementation of the ReportRepository interface.
type reportGorm struct {
	db *gorm.DB
}

// Compile-time check that reportGorm implements ReportRepository.
var _ usecase.ReportRepository = (*reportGorm)(nil)

// NewReportGorm creates a new instance of reportGorm.
func NewReportGorm(db *gorm.DB) *reportGorm {
	return &reportGorm{db: db}
}

// Create validates and inserts a report. Reports are never updated afterwards.
func (r *reportGorm) Create(ctx context.Context, rep *entity.Report) error {
	if rep == nil {
		return errors.New("report is nil")
	}
	if err := rep.Validate(); err != nil {
		return err
	}
	if rep.GeneratedAt.IsZero() {
		rep.GeneratedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(rep).Error
}

// FindByID retrieves a report by ID.
func (r *reportGorm) FindByID(ctx context.Context, id uint) (*entity.Report, error) {
	var rep entity.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rep).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrReportNotFound
		}
		return nil, err
	}
	return &rep, nil
}

// ListByModelID retrieves the reports generated for a model, newest first.
func (r *reportGorm) ListByModelID(ctx context.Context, modelID uint) ([]entity.Report, error) {
	var reports []entity.Report
	if err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("generated_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// List returns all reports ordered by ID. Used by the admin surface.
func (r *reportGorm) List(ctx context.Context) ([]entity.Report, error) {
	var reports []entity.Report
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Delete removes a single report.
func (r *reportGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Report{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrReportNotFound
	}
	return nil
}
