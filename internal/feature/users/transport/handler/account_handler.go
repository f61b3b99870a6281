package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"frs_backend/internal/api"
	"frs_backend/internal/feature/users/domain/entity"
	"frs_backend/internal/feature/users/transport/http/dto"
	"frs_backend/internal/feature/users/usecase"
	jwtmw "frs_backend/internal/platform/jwt"
)

// AccountUsecase defines the account operations consumed by this handler.
type AccountUsecase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, username, email, imageFile string) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uint, current, newPassword string) error
}

// AccountHandler handles HTTP requests for the authenticated user's account.
type AccountHandler struct {
	account AccountUsecase
}

// NewAccountHandler creates a new instance of AccountHandler.
func NewAccountHandler(account AccountUsecase) *AccountHandler {
	return &AccountHandler{account: account}
}

func userResponse(u *entity.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		ImageFile: u.ImageFile,
		CreatedAt: u.CreatedAt,
	}
}

// Show returns the current user's profile. The password digest is never
// included.
func (h *AccountHandler) Show(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	user, err := h.account.GetProfile(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to load account", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load account"})
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// Update changes the current user's profile fields.
// - 400 on validation failure (including invalid email format)
// - 409 when the new username or email is taken
func (h *AccountHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	var req dto.UpdateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("account update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.account.UpdateProfile(c.Request.Context(), userID, req.Username, req.Email, req.ImageFile)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, entity.ErrEmailInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("account update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "account update failed"})
		}
		return
	}
	slog.Info("account updated", "user_id", userID)
	c.JSON(http.StatusOK, userResponse(user))
}

// ChangePassword re-hashes and stores a new password after verifying the
// current one. All sessions are revoked on success, including this one.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("password change validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.account.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrPasswordRequired):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("password change failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "password change failed"})
		}
		return
	}
	slog.Info("password changed", "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "password updated, please log in again"})
}
