package jwtmw

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"frs_backend/internal/api"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextSessionID = "sessionID"
)

// loginNotice is the body returned for every unauthenticated request to a
// protected route.
const loginNotice = "please log in to access this page"

// SessionResolver maps a session token to the owning user.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (usecase).
type SessionResolver interface {
	// ResolveSession returns the user ID for a live session, or an error if
	// the session is unknown, expired, or revoked.
	ResolveSession(ctx context.Context, sessionID string) (uint, error)
}

// AuthRequired returns a Gin middleware that restricts access to
// authenticated users. It validates the bearer token signature and then
// resolves the embedded session, so a logged-out session is rejected even
// while its token is still within its expiry window.
func AuthRequired(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: loginNotice})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server misconfigured"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is allowed
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: loginNotice})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: loginNotice})
			return
		}
		sub, okSub := claims["sub"].(float64) // JWT numbers are decoded as float64
		sid, okSid := claims["sid"].(string)
		if !okSub || !okSid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: loginNotice})
			return
		}

		userID, err := sessions.ResolveSession(c.Request.Context(), sid)
		if err != nil || userID != uint(sub) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: loginNotice})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSessionID, sid)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID set by AuthRequired.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentSessionID returns the session token set by AuthRequired.
func CurrentSessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextSessionID)
	if !ok {
		return "", false
	}
	sid, ok := v.(string)
	return sid, ok
}
