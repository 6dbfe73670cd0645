package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// MockObjectStorage implements ObjectStorage in memory for testing
type MockObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte

	// Optional function overrides for custom test behavior
	SaveTempFunc func(ctx context.Context, name string, content io.Reader) (string, error)
	PromoteFunc  func(ctx context.Context, tempPath, finalName string) (string, error)
	OpenFunc     func(ctx context.Context, path string) (io.ReadCloser, int64, error)
}

// NewMockObjectStorage creates a new in-memory storage for testing
func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{
		objects: make(map[string][]byte),
	}
}

// SaveTemp stores the content under "tmp/" + name
func (m *MockObjectStorage) SaveTemp(ctx context.Context, name string, content io.Reader) (string, error) {
	if m.SaveTempFunc != nil {
		return m.SaveTempFunc(ctx, name, content)
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}

	tempPath := "tmp/" + name
	m.mu.Lock()
	m.objects[tempPath] = data
	m.mu.Unlock()

	return tempPath, nil
}

// Promote moves the object to its final name
func (m *MockObjectStorage) Promote(ctx context.Context, tempPath, finalName string) (string, error) {
	if m.PromoteFunc != nil {
		return m.PromoteFunc(ctx, tempPath, finalName)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.objects[tempPath]
	if !ok {
		return "", fmt.Errorf("temp object not found: %s", tempPath)
	}
	delete(m.objects, tempPath)
	m.objects[finalName] = data

	return finalName, nil
}

// Open reads a stored object
func (m *MockObjectStorage) Open(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, path)
	}

	m.mu.Lock()
	data, ok := m.objects[path]
	m.mu.Unlock()

	if !ok {
		return nil, 0, fmt.Errorf("object not found: %s", path)
	}

	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

// Object returns the stored bytes for assertions
func (m *MockObjectStorage) Object(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[path]
	return data, ok
}

// Ensure MockObjectStorage implements ObjectStorage
var _ ObjectStorage = (*MockObjectStorage)(nil)
