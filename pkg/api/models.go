package api

import "predictions-backend/internal/predictions"

type HealthResponse struct {
	Status string `json:"status"`
}

type PredictionsRequest struct {
	Model  string `schema:"model"`
	TopX   int    `schema:"top_x"`
	Output string `schema:"output"`
}

type PredictionsResponse struct {
	Model   string            `json:"model"`
	TopX    int               `json:"top_x"`
	Count   int               `json:"count"`
	Results []predictions.Row `json:"results"`
}

type ModelInfo struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	ScoreColumn string `json:"score_column"`
	Available   bool   `json:"available"`
}
