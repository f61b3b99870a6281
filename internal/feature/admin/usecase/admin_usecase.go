// Package usecase implements the back-office CRUD logic over all entities.
// It is the programmatic replacement for a generic admin scaffold: a separate,
// optional front end drives it through the admin HTTP surface.
package usecase

import (
	"context"

	frsentity "frs_backend/internal/feature/frsmodels/domain/entity"
	reportentity "frs_backend/internal/feature/reports/domain/entity"
	userentity "frs_backend/internal/feature/users/domain/entity"
	"frs_backend/internal/platform/credentials"
)

// UserAdminRepository is the full user persistence surface the back office
// needs. Following Go convention: interfaces are defined by the consumer.
type UserAdminRepository interface {
	List(ctx context.Context) ([]userentity.User, error)
	FindByID(ctx context.Context, id uint) (*userentity.User, error)
	Create(ctx context.Context, user *userentity.User) error
	Update(ctx context.Context, user *userentity.User) error
	Delete(ctx context.Context, id uint) error
}

// ModelAdminRepository is the model persistence surface for the back office.
type ModelAdminRepository interface {
	List(ctx context.Context) ([]frsentity.FRSModel, error)
	FindByID(ctx context.Context, id uint) (*frsentity.FRSModel, error)
	Delete(ctx context.Context, id uint) error
}

// ReportAdminRepository is the report persistence surface for the back office.
type ReportAdminRepository interface {
	List(ctx context.Context) ([]reportentity.Report, error)
	FindByID(ctx context.Context, id uint) (*reportentity.Report, error)
	Delete(ctx context.Context, id uint) error
}

// adminUsecase exposes list/get/create/update/delete per entity.
type adminUsecase struct {
	users   UserAdminRepository
	models  ModelAdminRepository
	reports ReportAdminRepository
}

// NewAdminUsecase creates a new instance of adminUsecase.
func NewAdminUsecase(users UserAdminRepository, models ModelAdminRepository, reports ReportAdminRepository) *adminUsecase {
	return &adminUsecase{users: users, models: models, reports: reports}
}

// ListUsers returns all registered users.
func (u *adminUsecase) ListUsers(ctx context.Context) ([]userentity.User, error) {
	return u.users.List(ctx)
}

// GetUser returns a single user.
func (u *adminUsecase) GetUser(ctx context.Context, id uint) (*userentity.User, error) {
	return u.users.FindByID(ctx, id)
}

// CreateUser creates an account on behalf of an administrator. The supplied
// plaintext password is hashed the same way registration hashes it.
func (u *adminUsecase) CreateUser(ctx context.Context, username, email, password string) (*userentity.User, error) {
	hashed, err := credentials.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &userentity.User{
		Username:     username,
		Email:        email,
		ImageFile:    userentity.DefaultImageFile,
		PasswordHash: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser edits a user's fields. A non-empty password is re-hashed before
// it is stored; the existing digest is kept otherwise. There is no way to set
// a digest directly.
func (u *adminUsecase) UpdateUser(ctx context.Context, id uint, username, email, imageFile, password string) (*userentity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if imageFile != "" {
		user.ImageFile = imageFile
	}
	if password != "" {
		hashed, err := credentials.HashPassword(password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user. The repository refuses while model records still
// reference the user.
func (u *adminUsecase) DeleteUser(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}

// ListModels returns all model records.
func (u *adminUsecase) ListModels(ctx context.Context) ([]frsentity.FRSModel, error) {
	return u.models.List(ctx)
}

// GetModel returns a single model record.
func (u *adminUsecase) GetModel(ctx context.Context, id uint) (*frsentity.FRSModel, error) {
	return u.models.FindByID(ctx, id)
}

// DeleteModel removes a model record and, transactionally, its reports.
func (u *adminUsecase) DeleteModel(ctx context.Context, id uint) error {
	return u.models.Delete(ctx, id)
}

// ListReports returns all reports.
func (u *adminUsecase) ListReports(ctx context.Context) ([]reportentity.Report, error) {
	return u.reports.List(ctx)
}

// GetReport returns a single report.
func (u *adminUsecase) GetReport(ctx context.Context, id uint) (*reportentity.Report, error) {
	return u.reports.FindByID(ctx, id)
}

// DeleteReport removes a single report.
func (u *adminUsecase) DeleteReport(ctx context.Context, id uint) error {
	return u.reports.Delete(ctx, id)
}
