package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	frsentity "frs_backend/internal/feature/frsmodels/domain/entity"
	repentity "frs_backend/internal/feature/reports/domain/entity"
	"frs_backend/internal/feature/users/domain/entity"
	"frs_backend/internal/feature/users/usecase"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{}, &frsentity.FRSModel{}, &repentity.Report{})
	require.NoError(t, err, "failed to migrate test database")
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Email: email, PasswordHash: "$2a$10$digest"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestUserGormCreate(t *testing.T) {
	t.Run("persists a valid user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		u := &entity.User{Username: "admin", Email: "ad@min.com", PasswordHash: "$2a$10$digest"}
		require.NoError(t, repo.Create(context.Background(), u))
		assert.NotZero(t, u.ID)

		got, err := repo.FindByEmail(context.Background(), "ad@min.com")
		require.NoError(t, err)
		assert.Equal(t, "admin", got.Username)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)
		seedUser(t, db, "admin", "ad@min.com")

		u := &entity.User{Username: "other", Email: "ad@min.com", PasswordHash: "$2a$10$digest"}
		assert.ErrorIs(t, repo.Create(context.Background(), u), usecase.ErrUserAlreadyExists)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)
		seedUser(t, db, "admin", "ad@min.com")

		u := &entity.User{Username: "admin", Email: "other@min.com", PasswordHash: "$2a$10$digest"}
		assert.ErrorIs(t, repo.Create(context.Background(), u), usecase.ErrUserAlreadyExists)
	})

	t.Run("invalid email writes nothing", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		u := &entity.User{Username: "admin", Email: "not-an-email", PasswordHash: "$2a$10$digest"}
		assert.ErrorIs(t, repo.Create(context.Background(), u), entity.ErrEmailInvalid)

		var count int64
		require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
		assert.Zero(t, count, "validation failure must not leave a row behind")
	})
}

func TestUserGormFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)
	seeded := seedUser(t, db, "admin", "ad@min.com")

	t.Run("by id", func(t *testing.T) {
		got, err := repo.FindByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "ad@min.com", got.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(context.Background(), "no@body.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGormUpdate(t *testing.T) {
	t.Run("saves changed fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)
		u := seedUser(t, db, "admin", "ad@min.com")

		u.Username = "root"
		u.ImageFile = "avatar.png"
		require.NoError(t, repo.Update(context.Background(), u))

		got, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "root", got.Username)
		assert.Equal(t, "avatar.png", got.ImageFile)
	})

	t.Run("cannot take another user's email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)
		seedUser(t, db, "admin", "ad@min.com")
		u := seedUser(t, db, "other", "other@min.com")

		u.Email = "ad@min.com"
		assert.ErrorIs(t, repo.Update(context.Background(), u), usecase.ErrUserAlreadyExists)
	})

	t.Run("rejects unsaved user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		u := &entity.User{Username: "ghost", Email: "g@host.com", PasswordHash: "$2a$10$digest"}
		assert.ErrorIs(t, repo.Update(context.Background(), u), usecase.ErrUserNotFound)
	})
}

func TestUserGormList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)
	seedUser(t, db, "admin", "ad@min.com")
	seedUser(t, db, "other", "other@min.com")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "other", users[1].Username)
}

func TestUserGormDelete(t *testing.T) {
	t.Run("removes a user without models", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)
		u := seedUser(t, db, "admin", "ad@min.com")

		require.NoError(t, repo.Delete(context.Background(), u.ID))

		_, err := repo.FindByID(context.Background(), u.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("is restricted while the user owns models", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)
		u := seedUser(t, db, "admin", "ad@min.com")
		require.NoError(t, db.Create(&frsentity.FRSModel{FilePath: "artifacts/1_m.h5", UserID: u.ID}).Error)

		assert.ErrorIs(t, repo.Delete(context.Background(), u.ID), usecase.ErrUserHasModels)

		// The user row survives the aborted transaction
		_, err := repo.FindByID(context.Background(), u.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		assert.ErrorIs(t, repo.Delete(context.Background(), 9999), usecase.ErrUserNotFound)
	})
}
