package predictions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ModelSpec ties a model to its backing file and ranking rule. ScoreColumn is
// the descending sort key used when the table has no rank column.
type ModelSpec struct {
	File        string `yaml:"file"`
	ScoreColumn string `yaml:"score_column"`
}

// Registry is the immutable model -> spec table. It is built once at startup
// and only read afterwards.
type Registry struct {
	specs map[ModelID]ModelSpec
}

func DefaultRegistry() *Registry {
	return &Registry{specs: map[ModelID]ModelSpec{
		LogisticRegression: {File: "logreg_predictions_all.csv", ScoreColumn: "prob_first_time_investor"},
		XGBoost:            {File: "xgb_predictions_all.csv", ScoreColumn: "prob_first_time_investor"},
		WeibullTTERNN:      {File: "weibull_tte_predictions_all.csv", ScoreColumn: "risk_6m"},
	}}
}

type registryFile struct {
	Models map[string]ModelSpec `yaml:"models"`
}

// LoadRegistry reads a YAML file overriding entries of the default registry.
// Only known model identifiers may appear; omitted fields keep their
// defaults.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model config %s: %w", path, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model config %s: %w", path, err)
	}

	registry := DefaultRegistry()
	for name, override := range file.Models {
		model, err := ParseModelID(name)
		if err != nil {
			return nil, fmt.Errorf("invalid model config %s: %w", path, err)
		}

		spec := registry.specs[model]
		if override.File != "" {
			spec.File = override.File
		}
		if override.ScoreColumn != "" {
			spec.ScoreColumn = override.ScoreColumn
		}
		registry.specs[model] = spec
	}

	return registry, nil
}

func (r *Registry) Spec(model ModelID) (ModelSpec, bool) {
	spec, ok := r.specs[model]
	return spec, ok
}

// Models returns the registered identifiers in the enumeration's order.
func (r *Registry) Models() []ModelID {
	var models []ModelID
	for _, model := range ModelIDs() {
		if _, ok := r.specs[model]; ok {
			models = append(models, model)
		}
	}
	return models
}
