package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ObjectStorage abstracts where uploaded files live. Uploads land under a
// temporary name first, because the final object name includes the database
// ID that only exists after the metadata row is inserted. Promote moves the
// object to its final name and returns the path stored in the database.
type ObjectStorage interface {
	SaveTemp(ctx context.Context, name string, content io.Reader) (string, error)
	Promote(ctx context.Context, tempPath, finalName string) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, int64, error)
}

// LocalStorage stores objects as plain files under a base directory
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a LocalStorage rooted at baseDir, creating the
// directory if needed
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// SaveTemp writes the content to a file named after the upload
func (s *LocalStorage) SaveTemp(_ context.Context, name string, content io.Reader) (string, error) {
	tempPath := filepath.Join(s.baseDir, name)

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return tempPath, nil
}

// Promote renames the temp file to its final name
func (s *LocalStorage) Promote(_ context.Context, tempPath, finalName string) (string, error) {
	finalPath := filepath.Join(s.baseDir, finalName)
	if err := os.Rename(tempPath, finalPath); err != nil {
		return "", fmt.Errorf("failed to rename file: %w", err)
	}
	return finalPath, nil
}

// Open opens a stored file for reading and reports its size
func (s *LocalStorage) Open(_ context.Context, path string) (io.ReadCloser, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file: %w", err)
	}

	return f, info.Size(), nil
}

// Ensure LocalStorage implements ObjectStorage
var _ ObjectStorage = (*LocalStorage)(nil)
