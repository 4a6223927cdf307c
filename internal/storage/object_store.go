package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by GetObject when the requested key does not
// exist. Both implementations wrap it so callers can use errors.Is.
var ErrObjectNotFound = errors.New("object not found")

type ObjectStore interface {
	CreateBucket(ctx context.Context) error

	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	PutObject(ctx context.Context, key string, data io.Reader) error

	ObjectExists(ctx context.Context, key string) (bool, error)
}
