// Package handler provides the HTTP handlers for the frsmodels feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frs_backend/internal/api"
	"frs_backend/internal/feature/frsmodels/domain/entity"
	"frs_backend/internal/feature/frsmodels/usecase"
	jwtmw "frs_backend/internal/platform/jwt"
)

// ModelUsecase defines the model record operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ModelUsecase interface {
	Upload(ctx context.Context, userID uint, name, filename string, r io.Reader, size int64) (*entity.FRSModel, error)
	ListForUser(ctx context.Context, userID uint) ([]entity.FRSModel, error)
	GetOwned(ctx context.Context, userID, modelID uint) (*entity.FRSModel, error)
}

// ModelHandler handles HTTP requests for uploaded model records.
type ModelHandler struct {
	uc ModelUsecase
}

// NewModelHandler creates a new instance of ModelHandler.
func NewModelHandler(uc ModelUsecase) *ModelHandler {
	return &ModelHandler{uc: uc}
}

// ModelResponse converts a model entity to its API representation.
func ModelResponse(m *entity.FRSModel) api.ModelResponse {
	return api.ModelResponse{
		ID:         m.ID,
		Name:       m.Name,
		FilePath:   m.FilePath,
		UploadedAt: m.UploadedAt,
		UserID:     m.UserID,
	}
}

// Upload stores an uploaded model artifact and creates its record.
//
// Endpoint: POST /models
// Content-Type: multipart/form-data
// Fields: name (display name, optional), file (the artifact)
func (h *ModelHandler) Upload(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		slog.Warn("model upload without file", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "model artifact file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded artifact", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read artifact"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded artifact", "error", err)
		}
	}()

	name := c.PostForm("name")
	model, err := h.uc.Upload(c.Request.Context(), userID, name, file.Filename, f, file.Size)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFilePathAlreadyExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrArtifactTooLarge), errors.Is(err, usecase.ErrArtifactRequired):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("model upload failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "model upload failed"})
		}
		return
	}

	slog.Info("model uploaded", "model_id", model.ID, "user_id", userID)
	c.JSON(http.StatusCreated, ModelResponse(model))
}

// List returns the caller's uploaded models.
//
// Endpoint: GET /models
func (h *ModelHandler) List(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	models, err := h.uc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list models", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list models"})
		return
	}
	out := make([]api.ModelResponse, 0, len(models))
	for i := range models {
		out = append(out, ModelResponse(&models[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one of the caller's models by ID.
//
// Endpoint: GET /models/:id
func (h *ModelHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid model id"})
		return
	}
	model, err := h.uc.GetOwned(c.Request.Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrModelNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to load model", "error", err, "model_id", id, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load model"})
		return
	}
	c.JSON(http.StatusOK, ModelResponse(model))
}
