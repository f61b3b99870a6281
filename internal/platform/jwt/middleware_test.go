package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSessionResolver struct {
	ResolveSessionFunc func(ctx context.Context, sessionID string) (uint, error)
}

func (m *mockSessionResolver) ResolveSession(ctx context.Context, sessionID string) (uint, error) {
	return m.ResolveSessionFunc(ctx, sessionID)
}

func setupAuthRouter(resolver SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(resolver), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		sid, _ := CurrentSessionID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "session_id": sid})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret")

	resolver := &mockSessionResolver{
		ResolveSessionFunc: func(ctx context.Context, sessionID string) (uint, error) {
			if sessionID == "live-session" {
				return 7, nil
			}
			return 0, errors.New("session not found")
		},
	}
	r := setupAuthRouter(resolver)

	token, err := NewGenerator("test-secret", time.Hour).GenerateToken(7, "live-session")
	require.NoError(t, err)

	t.Run("valid token with live session passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7,"session_id":"live-session"}`, w.Body.String())
	})

	t.Run("missing header is rejected with the login notice", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"please log in to access this page"}`, w.Body.String())
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		forged, err := NewGenerator("attacker-secret", time.Hour).GenerateToken(7, "live-session")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token whose session was revoked is rejected", func(t *testing.T) {
		dead, err := NewGenerator("test-secret", time.Hour).GenerateToken(7, "revoked-session")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+dead)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"please log in to access this page"}`, w.Body.String())
	})

	t.Run("session owned by another user is rejected", func(t *testing.T) {
		mismatched := &mockSessionResolver{
			ResolveSessionFunc: func(ctx context.Context, sessionID string) (uint, error) {
				return 99, nil
			},
		}
		r := setupAuthRouter(mismatched)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret")

	resolver := &mockSessionResolver{
		ResolveSessionFunc: func(ctx context.Context, sessionID string) (uint, error) {
			return 7, nil
		},
	}
	r := setupAuthRouter(resolver)

	expired, err := NewGenerator("test-secret", -time.Minute).GenerateToken(7, "live-session")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
