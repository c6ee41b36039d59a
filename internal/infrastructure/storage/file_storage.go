package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	blobstorage "github.com/marcos-nsantos/personal-assistant/internal/adapter/storage"
)

// FileStorage keeps each key as a file inside one directory. Writes go to a
// temporary file first and are renamed into place.
type FileStorage struct {
	dir string
	now func() time.Time
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileStorage{dir: dir, now: time.Now}, nil
}

func (s *FileStorage) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, blobstorage.ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

func (s *FileStorage) Write(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(key)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return fmt.Errorf("replacing file: %w", err)
	}
	return nil
}

func (s *FileStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// Quarantine renames key to "<key>.corrupt-<timestamp>" and returns the new
// name.
func (s *FileStorage) Quarantine(_ context.Context, key string) (string, error) {
	moved := fmt.Sprintf("%s.corrupt-%s", key, s.now().UTC().Format("20060102T150405"))
	if err := os.Rename(s.path(key), s.path(moved)); err != nil {
		return "", fmt.Errorf("quarantining file: %w", err)
	}
	return moved, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}
