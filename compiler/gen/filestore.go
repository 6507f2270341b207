package gen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// FileStore persists generated files.
type FileStore interface {
	WriteFile(path string, data []byte) error
}

// OSFileStore writes files to the local file system.
type OSFileStore struct {
	// MkdirAll creates missing parent directories. When false, writing into
	// a missing directory fails.
	MkdirAll bool
}

// WriteFile implements FileStore.
func (s OSFileStore) WriteFile(path string, data []byte) error {
	if s.MkdirAll {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// MemFileStore keeps generated files in memory. It is safe for concurrent use.
type MemFileStore struct {
	mu     sync.Mutex
	files  map[string][]byte
	order  []string
	failOn map[string]error
}

// NewMemFileStore returns an empty in-memory store.
func NewMemFileStore() *MemFileStore {
	return &MemFileStore{
		files:  make(map[string][]byte),
		failOn: make(map[string]error),
	}
}

// FailOn makes writes to any path matching pattern (filepath.Match syntax)
// return err.
func (s *MemFileStore) FailOn(pattern string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[pattern] = err
}

// WriteFile implements FileStore.
func (s *MemFileStore) WriteFile(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for pattern, err := range s.failOn {
		if ok, _ := filepath.Match(pattern, path); ok {
			return err
		}
	}
	if _, exists := s.files[path]; !exists {
		s.order = append(s.order, path)
	}
	s.files[path] = slices.Clone(data)
	return nil
}

// Read returns the content written to path.
func (s *MemFileStore) Read(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return "", &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return string(data), nil
}

// Files returns the written paths in write order.
func (s *MemFileStore) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.order)
}
