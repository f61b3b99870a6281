// Package api defines the shared request and response types for the HTTP surface.
package api

import (
	"encoding/json"
	"time"
)

// ErrorResponse is the standard error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the standard success body for operations without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the access token issued on successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public representation of a user. The password digest is
// never included here.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ImageFile string    `json:"image_file"`
	CreatedAt time.Time `json:"created_at"`
}

// ModelResponse is the representation of an uploaded facial-recognition model record.
type ModelResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
	UserID     uint      `json:"user_id"`
}

// ReportResponse is the representation of a generated report.
type ReportResponse struct {
	ID          uint            `json:"id"`
	ModelID     uint            `json:"model_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Data        json.RawMessage `json:"data"`
}

// AdminUserResponse is the back-office representation of a user. The stored
// digest is rendered so administrators can audit it, but the plaintext is
// never recoverable from it.
type AdminUserResponse struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ImageFile    string    `json:"image_file"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
