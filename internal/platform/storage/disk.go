package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore keeps uploaded files under a single base directory on local disk.
type DiskStore struct {
	baseDir string
}

var _ FileStore = (*DiskStore)(nil)

// NewDiskStore creates the base directory if needed.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", baseDir, err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) Store(ctx context.Context, content io.Reader, suggestedName string) (string, error) {
	// A fresh uuid prefix keeps colliding filenames apart; Base strips any
	// path components a client smuggles into the filename.
	name := uuid.New().String() + "_" + filepath.Base(suggestedName)
	fullPath := filepath.Join(s.baseDir, name)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", fullPath, err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to sync file %s: %w", fullPath, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file %s: %w", fullPath, err)
	}

	return fullPath, nil
}

func (s *DiskStore) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}
