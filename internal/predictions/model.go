package predictions

import "fmt"

// ModelID selects which precomputed prediction table to serve. The set is
// fixed at deployment time; anything else is rejected at the transport layer.
type ModelID string

const (
	LogisticRegression ModelID = "logistic_regression"
	XGBoost            ModelID = "xgboost"
	WeibullTTERNN      ModelID = "weibull_tte_rnn"
)

func ModelIDs() []ModelID {
	return []ModelID{LogisticRegression, XGBoost, WeibullTTERNN}
}

func ParseModelID(s string) (ModelID, error) {
	switch ModelID(s) {
	case LogisticRegression, XGBoost, WeibullTTERNN:
		return ModelID(s), nil
	}
	return "", fmt.Errorf("unknown model '%s'", s)
}

type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputCSV  OutputFormat = "csv"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputJSON, OutputCSV:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format '%s'", s)
}
