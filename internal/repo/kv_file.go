package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// fileKV stores each key as one file in a directory.
// Writes go to a temp file that is renamed over the target, so a crash
// mid-write never leaves a truncated value behind.
type fileKV struct {
	dir string
}

// NewFileKV constructs a KVStore rooted at dir, creating it if needed.
func NewFileKV(dir string) (KVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repo.NewFileKV: %w", err)
	}
	return &fileKV{dir: dir}, nil
}

// path maps a key to its file. Keys are query-escaped so separators such
// as ':' and '/' cannot escape the directory.
func (f *fileKV) path(key string) string {
	return filepath.Join(f.dir, url.QueryEscape(key)+".json")
}

func (f *fileKV) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repo.fileKV.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.fileKV.Get: %w", err)
	}
	return b, nil
}

func (f *fileKV) Put(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("repo.fileKV.Put: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.fileKV.Put: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.fileKV.Put: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repo.fileKV.Put: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("repo.fileKV.Put: rename: %w", err)
	}
	return nil
}

func (f *fileKV) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("repo.fileKV.Delete: %w", err)
	}
	return nil
}
