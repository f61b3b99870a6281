package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frs_backend/internal/feature/frsmodels/domain/entity"
)

type mockModelRepository struct {
	CreateFunc       func(ctx context.Context, model *entity.FRSModel) error
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.FRSModel, error)
	ListByUserIDFunc func(ctx context.Context, userID uint) ([]entity.FRSModel, error)
}

func (m *mockModelRepository) Create(ctx context.Context, model *entity.FRSModel) error {
	return m.CreateFunc(ctx, model)
}

func (m *mockModelRepository) FindByID(ctx context.Context, id uint) (*entity.FRSModel, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockModelRepository) ListByUserID(ctx context.Context, userID uint) ([]entity.FRSModel, error) {
	return m.ListByUserIDFunc(ctx, userID)
}

type mockArtifactStore struct {
	SaveFunc   func(ctx context.Context, name string, r io.Reader) (string, error)
	RemoveFunc func(ctx context.Context, path string) error
}

func (m *mockArtifactStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	return m.SaveFunc(ctx, name, r)
}

func (m *mockArtifactStore) Remove(ctx context.Context, path string) error {
	return m.RemoveFunc(ctx, path)
}

func TestUpload(t *testing.T) {
	t.Run("stores the blob under an owner-prefixed name and records it", func(t *testing.T) {
		var savedName string
		artifacts := &mockArtifactStore{
			SaveFunc: func(ctx context.Context, name string, r io.Reader) (string, error) {
				savedName = name
				return "artifacts/" + name, nil
			},
		}
		var created *entity.FRSModel
		models := &mockModelRepository{
			CreateFunc: func(ctx context.Context, model *entity.FRSModel) error {
				model.ID = 1
				created = model
				return nil
			},
		}
		uc := NewFRSModelUsecase(models, artifacts)

		got, err := uc.Upload(context.Background(), 7, "resnet-v2", "model.h5", strings.NewReader("weights"), 7)
		require.NoError(t, err)

		assert.Equal(t, "7_model.h5", savedName)
		require.NotNil(t, created)
		assert.Equal(t, "resnet-v2", created.Name)
		assert.Equal(t, "artifacts/7_model.h5", created.FilePath)
		assert.Equal(t, uint(7), created.UserID)
		assert.False(t, created.UploadedAt.IsZero())
		assert.Equal(t, uint(1), got.ID)
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		uc := NewFRSModelUsecase(nil, nil)

		_, err := uc.Upload(context.Background(), 7, "m", "", strings.NewReader("x"), 1)
		assert.ErrorIs(t, err, ErrArtifactRequired)

		_, err = uc.Upload(context.Background(), 7, "m", "model.h5", nil, 1)
		assert.ErrorIs(t, err, ErrArtifactRequired)
	})

	t.Run("oversized upload is rejected before any write", func(t *testing.T) {
		artifacts := &mockArtifactStore{
			SaveFunc: func(ctx context.Context, name string, r io.Reader) (string, error) {
				t.Fatal("store must not be touched for an oversized upload")
				return "", nil
			},
		}
		uc := NewFRSModelUsecase(nil, artifacts)

		_, err := uc.Upload(context.Background(), 7, "m", "model.h5", strings.NewReader("x"), MaxArtifactSize+1)
		assert.ErrorIs(t, err, ErrArtifactTooLarge)
	})

	t.Run("record failure removes the stored blob", func(t *testing.T) {
		removed := ""
		artifacts := &mockArtifactStore{
			SaveFunc: func(ctx context.Context, name string, r io.Reader) (string, error) {
				return "artifacts/" + name, nil
			},
			RemoveFunc: func(ctx context.Context, path string) error {
				removed = path
				return nil
			},
		}
		models := &mockModelRepository{
			CreateFunc: func(ctx context.Context, model *entity.FRSModel) error {
				return errors.New("db down")
			},
		}
		uc := NewFRSModelUsecase(models, artifacts)

		_, err := uc.Upload(context.Background(), 7, "m", "model.h5", strings.NewReader("x"), 1)
		require.Error(t, err)
		assert.Equal(t, "artifacts/7_model.h5", removed, "orphaned blob must be cleaned up")
	})

	t.Run("duplicate path from the repository is passed through", func(t *testing.T) {
		artifacts := &mockArtifactStore{
			SaveFunc: func(ctx context.Context, name string, r io.Reader) (string, error) {
				return "artifacts/" + name, nil
			},
			RemoveFunc: func(ctx context.Context, path string) error { return nil },
		}
		models := &mockModelRepository{
			CreateFunc: func(ctx context.Context, model *entity.FRSModel) error {
				return ErrFilePathAlreadyExists
			},
		}
		uc := NewFRSModelUsecase(models, artifacts)

		_, err := uc.Upload(context.Background(), 7, "m", "model.h5", strings.NewReader("x"), 1)
		assert.ErrorIs(t, err, ErrFilePathAlreadyExists)
	})
}

func TestListForUser(t *testing.T) {
	models := &mockModelRepository{
		ListByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.FRSModel, error) {
			assert.Equal(t, uint(7), userID)
			return []entity.FRSModel{{ID: 2, UserID: 7}, {ID: 1, UserID: 7}}, nil
		},
	}
	uc := NewFRSModelUsecase(models, nil)

	got, err := uc.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetOwned(t *testing.T) {
	models := &mockModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.FRSModel, error) {
			switch id {
			case 1:
				return &entity.FRSModel{ID: 1, UserID: 7, FilePath: "artifacts/7_m.h5"}, nil
			case 2:
				return &entity.FRSModel{ID: 2, UserID: 8, FilePath: "artifacts/8_m.h5"}, nil
			default:
				return nil, ErrModelNotFound
			}
		},
	}
	uc := NewFRSModelUsecase(models, nil)

	t.Run("owner sees the model", func(t *testing.T) {
		got, err := uc.GetOwned(context.Background(), 7, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), got.ID)
	})

	t.Run("a foreign model reads as not found", func(t *testing.T) {
		_, err := uc.GetOwned(context.Background(), 7, 2)
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("an unknown model reads the same way", func(t *testing.T) {
		_, err := uc.GetOwned(context.Background(), 7, 99)
		assert.ErrorIs(t, err, ErrModelNotFound)
	})
}
