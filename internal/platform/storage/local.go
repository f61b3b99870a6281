// Package storage writes uploaded model artifacts to the local filesystem.
// Artifacts are opaque blobs; nothing here inspects their contents.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// ErrArtifactExists is returned when the target path is already occupied.
var ErrArtifactExists = errors.New("artifact already exists at this path")

// unsafeChars matches everything that is not allowed in a stored file name.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Config holds configuration for the artifact store.
type Config struct {
	Dir string // Directory artifacts are written to
}

// LoadConfig loads artifact store configuration from environment variables.
func LoadConfig() Config {
	dir := os.Getenv("ARTIFACT_DIR")
	if dir == "" {
		dir = "artifacts"
	}
	return Config{Dir: dir}
}

// LocalStore stores artifacts on the local filesystem.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the artifact directory if needed and returns a store
// rooted at it.
func NewLocalStore(cfg Config) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact dir: %w", err)
	}
	return &LocalStore{dir: cfg.Dir}, nil
}

// SanitizeFilename strips path components and replaces characters that are
// unsafe in a stored file name.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	return unsafeChars.ReplaceAllString(name, "_")
}

// Save writes the blob under the given name and returns the path the record
// should reference. The write is exclusive: a second upload resolving to the
// same name fails with ErrArtifactExists rather than overwriting.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, SanitizeFilename(name))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", ErrArtifactExists
		}
		return "", fmt.Errorf("failed to create artifact file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Remove the partial file so a retry is not blocked by O_EXCL
		os.Remove(path)
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return path, nil
}

// Remove deletes a stored artifact. Used to roll back an upload whose record
// could not be persisted.
func (s *LocalStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
