// Package handler provides the HTTP handlers for the reports feature.
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
	"frs_backend/internal/feature/reports/domain/entity"
	"frs_backend/internal/feature/reports/transport/http/dto"
	"frs_backend/internal/feature/reports/usecase"
	jwtmw "frs_backend/internal/platform/jwt"
)

// ReportUsecase defines the report operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ReportUsecase interface {
	Record(ctx context.Context, userID, modelID uint, payload json.RawMessage) (*entity.Report, error)
	ListForModel(ctx context.Context, userID, modelID uint) ([]entity.Report, error)
	Get(ctx context.Context, userID, reportID uint) (*entity.Report, error)
}

// ReportHandler handles HTTP requests for generated reports.
type ReportHandler struct {
	uc ReportUsecase
}

// NewReportHandler creates a new instance of ReportHandler.
func NewReportHandler(uc ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ReportResponse converts a report entity to its API representation.
func ReportResponse(r *entity.Report) api.ReportResponse {
	return api.ReportResponse{
		ID:          r.ID,
		ModelID:     r.ModelID,
		GeneratedAt: r.GeneratedAt,
		Data:        json.RawMessage(r.Data),
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// Record stores the results of a completed prediction run as a report.
//
// Endpoint: POST /models/:id/predict
func (h *ReportHandler) Record(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	modelID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.RecordReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("report payload validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.uc.Record(c.Request.Context(), userID, modelID, req.Data)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrModelNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, entity.ErrPayloadRequired), errors.Is(err, entity.ErrPayloadInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to record report", "error", err, "model_id", modelID, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to record report"})
		}
		return
	}

	slog.Info("report recorded", "report_id", report.ID, "model_id", modelID, "user_id", userID)
	c.JSON(http.StatusCreated, ReportResponse(report))
}

// ListForModel returns the reports generated for one of the caller's models.
//
// Endpoint: GET /models/:id/reports
func (h *ReportHandler) ListForModel(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	modelID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reports, err := h.uc.ListForModel(c.Request.Context(), userID, modelID)
	if err != nil {
		if errors.Is(err, usecase.ErrModelNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to list reports", "error", err, "model_id", modelID, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list reports"})
		return
	}

	out := make([]api.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, ReportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single report for visualization.
//
// Endpoint: GET /reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	reportID, ok := paramID(c, "id")
	if !ok {
		return
	}

	report, err := h.uc.Get(c.Request.Context(), userID, reportID)
	if err != nil {
		if errors.Is(err, usecase.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to load report", "error", err, "report_id", reportID, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load report"})
		return
	}
	c.JSON(http.StatusOK, ReportResponse(report))
}
