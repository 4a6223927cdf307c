package predictions

import (
	"context"
	"errors"
	"fmt"

	"predictions-backend/internal/storage"
)

// Loader materializes prediction tables from the object store. Every call
// re-reads and re-parses the backing file; there is deliberately no cache, so
// a refreshed file is served on the next request.
type Loader struct {
	store    storage.ObjectStore
	registry *Registry
}

func NewLoader(store storage.ObjectStore, registry *Registry) *Loader {
	return &Loader{store: store, registry: registry}
}

// Load returns the full prediction table for a model. Failures are typed:
// *NotFoundError for a missing or empty file, *ReadError for anything
// unreadable.
func (l *Loader) Load(ctx context.Context, model ModelID) (*Table, error) {
	spec, ok := l.registry.Spec(model)
	if !ok {
		return nil, fmt.Errorf("model '%s' is not registered", model)
	}

	obj, err := l.store.GetObject(ctx, spec.File)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, &NotFoundError{Model: model, File: spec.File}
		}
		return nil, &ReadError{File: spec.File, Err: err}
	}
	defer obj.Close()

	table, err := ParseTable(obj)
	if err != nil {
		return nil, &ReadError{File: spec.File, Err: err}
	}

	if len(table.Rows) == 0 {
		return nil, &NotFoundError{Model: model, File: spec.File, Empty: true}
	}

	return table, nil
}
