package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	frsentity "frs_backend/internal/feature/frsmodels/domain/entity"
	frsusecase "frs_backend/internal/feature/frsmodels/usecase"
	"frs_backend/internal/feature/reports/domain/entity"
)

// ReportRepository abstracts the persistence layer for reports.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ReportRepository interface {
	// Create persists a new report.
	Create(ctx context.Context, report *entity.Report) error

	// FindByID retrieves a report by ID.
	FindByID(ctx context.Context, id uint) (*entity.Report, error)

	// ListByModelID retrieves all reports generated for a model.
	ListByModelID(ctx context.Context, modelID uint) ([]entity.Report, error)
}

// ModelRepository is the subset of the frsmodels repository needed here to
// resolve report ownership through the owning model.
type ModelRepository interface {
	FindByID(ctx context.Context, id uint) (*frsentity.FRSModel, error)
}

// reportUsecase implements report recording and viewing.
type reportUsecase struct {
	reports ReportRepository
	models  ModelRepository
}

// NewReportUsecase creates a new instance of reportUsecase.
func NewReportUsecase(reports ReportRepository, models ModelRepository) *reportUsecase {
	return &reportUsecase{reports: reports, models: models}
}

// ownedModel loads a model and hides it when it belongs to someone else.
func (u *reportUsecase) ownedModel(ctx context.Context, userID, modelID uint) (*frsentity.FRSModel, error) {
	model, err := u.models.FindByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, frsusecase.ErrModelNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	if model.UserID != userID {
		return nil, ErrModelNotFound
	}
	return model, nil
}

// Record stores the structured results of a completed prediction run as an
// immutable report on the model. The run itself happens outside this core;
// only its output document is persisted.
func (u *reportUsecase) Record(ctx context.Context, userID, modelID uint, payload json.RawMessage) (*entity.Report, error) {
	if _, err := u.ownedModel(ctx, userID, modelID); err != nil {
		return nil, err
	}

	report := &entity.Report{
		GeneratedAt: time.Now(),
		ModelID:     modelID,
		Data:        datatypes.JSON(payload),
	}
	if err := u.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListForModel returns the reports generated for one of the caller's models.
func (u *reportUsecase) ListForModel(ctx context.Context, userID, modelID uint) ([]entity.Report, error) {
	if _, err := u.ownedModel(ctx, userID, modelID); err != nil {
		return nil, err
	}
	return u.reports.ListByModelID(ctx, modelID)
}

// Get returns a single report, visible only to the owner of its model.
func (u *reportUsecase) Get(ctx context.Context, userID, reportID uint) (*entity.Report, error) {
	report, err := u.reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownedModel(ctx, userID, report.ModelID); err != nil {
		if errors.Is(err, ErrModelNotFound) {
			// The model is gone or foreign either way; hide the report
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return report, nil
}
