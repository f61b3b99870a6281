// Package handler provides the HTTP handlers for the users feature.
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

// AuthUsecase defines the authentication operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account from a unique username/email pair.
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login authenticates a user and returns an access token on success.
	Login(ctx context.Context, email, password string, meta usecase.SessionMeta) (string, error)
	// Logout revokes the given session.
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler handles HTTP requests for registration, login, and logout.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// - binds the request JSON to SignupReq
// - 400 on validation failure
// - 409 when the account cannot be created (duplicate username/email)
// - 201 on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if _, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		// Do not expose which field collided, to prevent account enumeration
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login handles the user login endpoint.
// - binds the request JSON to LoginReq
// - 400 on validation failure (empty or malformed fields)
// - 401 with a generic message on credential failure
// - 200 with an access token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	meta := usecase.SessionMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, meta)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Same response for unknown email and wrong password
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "login unsuccessful"})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Logout revokes the session carried by the current token. Protected routes
// require a fresh login afterwards.
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, ok := jwtmw.CurrentSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please log in to access this page"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), sid); err != nil {
		slog.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}
	slog.Info("user logout successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "you are logged out"})
}
