package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"predictions-backend/cmd"
	"predictions-backend/internal/api"
	"predictions-backend/internal/predictions"
	"predictions-backend/internal/storage"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type APIConfig struct {
	PredictionsDir    string `env:"PREDICTIONS_DIR" envDefault:"./prediction-db"`
	PredictionsBucket string `env:"PREDICTIONS_BUCKET" envDefault:""`
	S3EndpointURL     string `env:"S3_ENDPOINT_URL" envDefault:""`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:""`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:""`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	ModelConfig       string `env:"MODEL_CONFIG" envDefault:""`
	APIPort           string `env:"API_PORT" envDefault:"8001"`
}

func createObjectStore(cfg APIConfig) (storage.ObjectStore, error) {
	if cfg.PredictionsBucket != "" {
		slog.Info("serving predictions from s3", "bucket", cfg.PredictionsBucket, "endpoint", cfg.S3EndpointURL)
		return storage.NewS3ObjectStore(cfg.PredictionsBucket, storage.S3ClientConfig{
			Endpoint:        cfg.S3EndpointURL,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	}

	slog.Info("serving predictions from local directory", "dir", cfg.PredictionsDir)
	return storage.NewLocalObjectStore(cfg.PredictionsDir)
}

func createRegistry(cfg APIConfig) (*predictions.Registry, error) {
	if cfg.ModelConfig != "" {
		slog.Info("loading model registry overrides", "path", cfg.ModelConfig)
		return predictions.LoadRegistry(cfg.ModelConfig)
	}
	return predictions.DefaultRegistry(), nil
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	store, err := createObjectStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create object store: %v", err)
	}

	registry, err := createRegistry(cfg)
	if err != nil {
		log.Fatalf("Failed to load model registry: %v", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                    // Log requests
	r.Use(middleware.Recoverer)                 // Recover from panics
	r.Use(middleware.Timeout(60 * time.Second)) // Set request timeout

	apiHandler := api.NewPredictionService(store, registry)
	apiHandler.AddRoutes(r)

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	slog.Info("server started", "port", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	slog.Info("server stopped")
}
