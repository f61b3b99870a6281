package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"frs_backend/internal/feature/users/domain/entity"
	"frs_backend/internal/platform/credentials"
)

// sessionIDBytes is the entropy of a session token (hex-encoded to 64 chars).
const sessionIDBytes = 32

// SessionMeta carries request metadata recorded on the session for auditing.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

// userUsecase implements registration, authentication, and account management.
type userUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenIssuer
	sessionTTL time.Duration
}

// NewUserUsecase creates a new instance of userUsecase. sessionTTL bounds how
// long a login stays valid without re-authenticating.
func NewUserUsecase(users UserRepository, sessions SessionRepository, tokens TokenIssuer, sessionTTL time.Duration) *userUsecase {
	return &userUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// validatePassword checks a new password. Any non-empty password is accepted;
// only the digest is ever stored.
func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// newSessionID returns a random 64-character hex session token.
func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Register creates a new account. The plaintext password is hashed immediately
// and never stored; uniqueness of username and email is enforced by the store.
func (u *userUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := credentials.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		ImageFile:    entity.DefaultImageFile,
		PasswordHash: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates an email/password pair, opens a session, and returns a
// signed access token. A bcrypt comparison runs even when the email is
// unknown, so response timing does not reveal account existence.
func (u *userUsecase) Login(ctx context.Context, email, password string, meta SessionMeta) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		// Store failure, not a credential failure
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	digest := credentials.DummyDigest
	if err == nil {
		digest = user.PasswordHash
	}
	match := credentials.CheckPassword(password, digest)

	if err != nil || !match {
		return "", ErrInvalidCredentials
	}

	// Opportunistic sweep so the relational store does not accumulate
	// expired rows. Best effort; login proceeds either way.
	_, _ = u.sessions.DeleteExpired(ctx)

	sid, err := newSessionID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        sid,
		UserID:    user.ID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, sid)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Logout revokes the session, returning the principal to the anonymous state.
// Tokens referencing the session stop authenticating immediately.
func (u *userUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.Revoke(ctx, sessionID)
}

// ResolveSession maps a session token to the owning user ID. It is the single
// gate every protected operation passes through.
func (u *userUsecase) ResolveSession(ctx context.Context, sessionID string) (uint, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if session.IsRevoked() {
		return 0, ErrSessionRevoked
	}
	if session.IsExpired() {
		return 0, ErrSessionExpired
	}
	return session.UserID, nil
}
