package api

import (
	"errors"
	"fmt"
	"net/http"

	"predictions-backend/internal/predictions"
	"predictions-backend/internal/storage"
	"predictions-backend/pkg/api"

	"github.com/go-chi/chi/v5"
)

const (
	DefaultTopX = 1000
	MaxTopX     = 100000
)

// PredictionService serves the precomputed prediction tables. Handlers share
// no mutable state; every request loads its table fresh from the store.
type PredictionService struct {
	store    storage.ObjectStore
	registry *predictions.Registry
	loader   *predictions.Loader
}

func NewPredictionService(store storage.ObjectStore, registry *predictions.Registry) *PredictionService {
	return &PredictionService{
		store:    store,
		registry: registry,
		loader:   predictions.NewLoader(store, registry),
	}
}

func (s *PredictionService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) {
		return api.HealthResponse{Status: "ok"}, nil
	}))
	r.Get("/models", RestHandler(s.ListModels))
	r.Get("/predictions", RestHandler(s.GetPredictions))
	r.Get("/ui", s.UI)
	r.Get("/", s.Root)
}

func (s *PredictionService) ListModels(r *http.Request) (any, error) {
	ctx := r.Context()

	var infos []api.ModelInfo
	for _, model := range s.registry.Models() {
		spec, _ := s.registry.Spec(model)

		available, err := s.store.ObjectExists(ctx, spec.File)
		if err != nil {
			return nil, CodedErrorf(http.StatusInternalServerError, "failed to check prediction file '%s': %v", spec.File, err)
		}

		infos = append(infos, api.ModelInfo{
			Name:        string(model),
			File:        spec.File,
			ScoreColumn: spec.ScoreColumn,
			Available:   available,
		})
	}

	return infos, nil
}

func (s *PredictionService) GetPredictions(r *http.Request) (any, error) {
	req, err := ParseRequestQueryParams[api.PredictionsRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Model == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "missing required query param 'model'")
	}
	model, err := predictions.ParseModelID(req.Model)
	if err != nil {
		return nil, CodedError(http.StatusBadRequest, err)
	}

	if !r.Form.Has("top_x") {
		req.TopX = DefaultTopX
	}
	if req.TopX < 1 || req.TopX > MaxTopX {
		return nil, CodedErrorf(http.StatusBadRequest, "top_x must be between 1 and %d, got %d", MaxTopX, req.TopX)
	}

	if req.Output == "" {
		req.Output = string(predictions.OutputJSON)
	}
	output, err := predictions.ParseOutputFormat(req.Output)
	if err != nil {
		return nil, CodedError(http.StatusBadRequest, err)
	}

	table, err := s.loader.Load(r.Context(), model)
	if err != nil {
		return nil, codedDomainError(err)
	}

	spec, _ := s.registry.Spec(model)
	top, err := predictions.TopRows(table, spec.ScoreColumn, req.TopX)
	if err != nil {
		return nil, codedDomainError(err)
	}

	if output == predictions.OutputCSV {
		return &csvAttachment{
			filename: fmt.Sprintf("%s_top_%d.csv", model, req.TopX),
			table:    top,
		}, nil
	}

	return api.PredictionsResponse{
		Model:   string(model),
		TopX:    req.TopX,
		Count:   len(top.Rows),
		Results: top.Rows,
	}, nil
}

// codedDomainError maps the predictions error taxonomy onto HTTP statuses.
// Anything untyped falls through as an internal error.
func codedDomainError(err error) error {
	var notFound *predictions.NotFoundError
	var readErr *predictions.ReadError
	var validation *predictions.ValidationError

	switch {
	case errors.As(err, &notFound):
		return CodedError(http.StatusNotFound, err)
	case errors.As(err, &readErr):
		return CodedError(http.StatusInternalServerError, err)
	case errors.As(err, &validation):
		return CodedError(http.StatusUnprocessableEntity, err)
	}
	return err
}
