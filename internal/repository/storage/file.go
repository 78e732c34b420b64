package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const fileExt = ".json"

// FileStorage - one file per key inside a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create data directory: %w", err)
	}

	return &FileStorage{dir: dir}, nil
}

func (that *FileStorage) Get(_ context.Context, key string) ([]byte, error) {
	path, err := that.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", key, err)
	}

	return data, nil
}

// Put - writes through a temp file and a rename, readers never see a torn value.
func (that *FileStorage) Put(_ context.Context, key string, value []byte) error {
	path, err := that.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(that.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("can't create temp file for %s: %w", key, err)
	}

	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("can't write %s: %w", key, err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("can't sync %s: %w", key, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("can't close %s: %w", key, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("can't replace %s: %w", key, err)
	}

	return nil
}

func (that *FileStorage) Delete(_ context.Context, key string) error {
	path, err := that.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("can't delete %s: %w", key, err)
	}

	return nil
}

func (that *FileStorage) Close() error {
	return nil
}

func (that *FileStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return filepath.Join(that.dir, key+fileExt), nil
}
