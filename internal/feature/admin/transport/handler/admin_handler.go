// Package handler provides the HTTP handlers for the admin back-office surface.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frs_backend/internal/api"
	"frs_backend/internal/feature/admin/transport/http/dto"
	frsentity "frs_backend/internal/feature/frsmodels/domain/entity"
	frsusecase "frs_backend/internal/feature/frsmodels/usecase"
	reportentity "frs_backend/internal/feature/reports/domain/entity"
	reportusecase "frs_backend/internal/feature/reports/usecase"
	userentity "frs_backend/internal/feature/users/domain/entity"
	userusecase "frs_backend/internal/feature/users/usecase"
)

// AdminUsecase defines the back-office operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]userentity.User, error)
	GetUser(ctx context.Context, id uint) (*userentity.User, error)
	CreateUser(ctx context.Context, username, email, password string) (*userentity.User, error)
	UpdateUser(ctx context.Context, id uint, username, email, imageFile, password string) (*userentity.User, error)
	DeleteUser(ctx context.Context, id uint) error

	ListModels(ctx context.Context) ([]frsentity.FRSModel, error)
	GetModel(ctx context.Context, id uint) (*frsentity.FRSModel, error)
	DeleteModel(ctx context.Context, id uint) error

	ListReports(ctx context.Context) ([]reportentity.Report, error)
	GetReport(ctx context.Context, id uint) (*reportentity.Report, error)
	DeleteReport(ctx context.Context, id uint) error
}

// AdminHandler handles HTTP requests from the optional back-office front end.
type AdminHandler struct {
	uc AdminUsecase
}

// NewAdminHandler creates a new instance of AdminHandler.
func NewAdminHandler(uc AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func adminUserResponse(u *userentity.User) api.AdminUserResponse {
	return api.AdminUserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		ImageFile:    u.ImageFile,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func adminModelResponse(m *frsentity.FRSModel) api.ModelResponse {
	return api.ModelResponse{
		ID:         m.ID,
		Name:       m.Name,
		FilePath:   m.FilePath,
		UploadedAt: m.UploadedAt,
		UserID:     m.UserID,
	}
}

func adminReportResponse(r *reportentity.Report) api.ReportResponse {
	return api.ReportResponse{
		ID:          r.ID,
		ModelID:     r.ModelID,
		GeneratedAt: r.GeneratedAt,
		Data:        json.RawMessage(r.Data),
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("admin user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list users"})
		return
	}
	out := make([]api.AdminUserResponse, 0, len(users))
	for i := range users {
		out = append(out, adminUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetUser handles GET /admin/users/:id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.uc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userusecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("admin user fetch failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, adminUserResponse(user))
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.AdminCreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.uc.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userusecase.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("admin user creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create user"})
		return
	}
	slog.Info("admin created user", "user_id", user.ID)
	c.JSON(http.StatusCreated, adminUserResponse(user))
}

// UpdateUser handles PUT /admin/users/:id.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AdminUpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.uc.UpdateUser(c.Request.Context(), id, req.Username, req.Email, req.ImageFile, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, userusecase.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, userentity.ErrEmailInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("admin user update failed", "error", err, "user_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update user"})
		}
		return
	}
	slog.Info("admin updated user", "user_id", id)
	c.JSON(http.StatusOK, adminUserResponse(user))
}

// DeleteUser handles DELETE /admin/users/:id. Deletion is refused while the
// user still owns model records.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteUser(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, userusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, userusecase.ErrUserHasModels):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("admin user deletion failed", "error", err, "user_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete user"})
		}
		return
	}
	slog.Info("admin deleted user", "user_id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted"})
}

// ListModels handles GET /admin/models.
func (h *AdminHandler) ListModels(c *gin.Context) {
	models, err := h.uc.ListModels(c.Request.Context())
	if err != nil {
		slog.Error("admin model listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list models"})
		return
	}
	out := make([]api.ModelResponse, 0, len(models))
	for i := range models {
		out = append(out, adminModelResponse(&models[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetModel handles GET /admin/models/:id.
func (h *AdminHandler) GetModel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	model, err := h.uc.GetModel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, frsusecase.ErrModelNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("admin model fetch failed", "error", err, "model_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load model"})
		return
	}
	c.JSON(http.StatusOK, adminModelResponse(model))
}

// DeleteModel handles DELETE /admin/models/:id. Its reports are deleted with it.
func (h *AdminHandler) DeleteModel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteModel(c.Request.Context(), id); err != nil {
		if errors.Is(err, frsusecase.ErrModelNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("admin model deletion failed", "error", err, "model_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete model"})
		return
	}
	slog.Info("admin deleted model", "model_id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "model deleted"})
}

// ListReports handles GET /admin/reports.
func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.uc.ListReports(c.Request.Context())
	if err != nil {
		slog.Error("admin report listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list reports"})
		return
	}
	out := make([]api.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, adminReportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetReport handles GET /admin/reports/:id.
func (h *AdminHandler) GetReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	report, err := h.uc.GetReport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, reportusecase.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("admin report fetch failed", "error", err, "report_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load report"})
		return
	}
	c.JSON(http.StatusOK, adminReportResponse(report))
}

// DeleteReport handles DELETE /admin/reports/:id.
func (h *AdminHandler) DeleteReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteReport(c.Request.Context(), id); err != nil {
		if errors.Is(err, reportusecase.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("admin report deletion failed", "error", err, "report_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete report"})
		return
	}
	slog.Info("admin deleted report", "report_id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "report deleted"})
}
