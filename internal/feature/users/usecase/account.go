package usecase

import (
	"context"

	"frs_backend/internal/feature/users/domain/entity"
	"frs_backend/internal/platform/credentials"
)

// GetProfile returns the account of the given user.
func (u *userUsecase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile changes the mutable profile fields. Uniqueness and email
// format are re-checked by the repository on the write path. An empty
// imageFile keeps the current picture.
func (u *userUsecase) UpdateProfile(ctx context.Context, userID uint, username, email, imageFile string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = email
	if imageFile != "" {
		user.ImageFile = imageFile
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password, re-hashes the new one, and
// revokes every open session so stolen tokens die with the old password.
func (u *userUsecase) ChangePassword(ctx context.Context, userID uint, current, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !credentials.CheckPassword(current, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := credentials.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed

	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	return u.sessions.RevokeAllByUserID(ctx, userID)
}
