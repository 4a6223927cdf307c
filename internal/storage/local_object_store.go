package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalObjectStore serves objects straight from a directory on disk. This is
// the default for deployments where the offline scorer writes its prediction
// files to a shared volume.
type LocalObjectStore struct {
	dir string
}

var _ ObjectStore = (*LocalObjectStore)(nil)

func NewLocalObjectStore(dir string) (*LocalObjectStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", dir, err)
	}
	return &LocalObjectStore{dir: dir}, nil
}

func (p *LocalObjectStore) CreateBucket(ctx context.Context) error {
	return nil
}

func (p *LocalObjectStore) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(p.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object %s: %w", key, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	return file, nil
}

func (p *LocalObjectStore) PutObject(ctx context.Context, key string, data io.Reader) error {
	path := filepath.Join(p.dir, key)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		return err
	}

	return nil
}

func (p *LocalObjectStore) ObjectExists(ctx context.Context, key string) (bool, error) {
	info, err := os.Stat(filepath.Join(p.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s: %w", key, err)
	}
	return !info.IsDir(), nil
}
