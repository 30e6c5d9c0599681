package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per namespace under a base directory. It is
// the default driver and needs no external services.
type FileStore struct {
	baseDir string
}

// NewFileStore ensures the base directory exists and returns a handle.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Load reads the namespace file. A missing file is not an error; it reports
// the namespace as absent.
func (s *FileStore) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	payload, err := os.ReadFile(s.resolve(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read namespace %s: %w", namespace, err)
	}
	return payload, true, nil
}

// Save replaces the namespace file. The payload is written to a temp file and
// renamed into place so a crash mid-write never leaves a truncated namespace.
func (s *FileStore) Save(_ context.Context, namespace string, payload []byte) error {
	path := s.resolve(namespace)
	tmp, err := os.CreateTemp(s.baseDir, namespace+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", namespace, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close() //nolint:errcheck
		os.Remove(tmpName)
		return fmt.Errorf("write namespace %s: %w", namespace, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close namespace %s: %w", namespace, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace namespace %s: %w", namespace, err)
	}
	return nil
}

// Path exposes the absolute path of a namespace file (useful for debugging).
func (s *FileStore) Path(namespace string) string {
	return s.resolve(namespace)
}

func (s *FileStore) resolve(namespace string) string {
	return filepath.Join(s.baseDir, namespace+".json")
}
